package usecase

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-alumni-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

// Check pings the backing services. The endpoint itself always answers 200;
// individual component states are reported in the body.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := map[string]string{"status": "ok"}

	if u.db != nil {
		if err := u.db.Ping(ctx); err != nil {
			result["database"] = "down"
			result["status"] = "degraded"
		} else {
			result["database"] = "up"
		}
	}

	if redis.IsAvailable() {
		if err := redis.HealthCheck(ctx); err != nil {
			result["redis"] = "down"
		} else {
			result["redis"] = "up"
		}
	} else {
		result["redis"] = "in-memory fallback"
	}

	return result
}
