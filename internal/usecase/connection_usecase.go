package usecase

import (
	"context"

	"go-alumni-backend/internal/completion"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/google/uuid"
)

type connectionUsecase struct {
	connRepo    domain.ConnectionRepository
	profileRepo domain.ProfileRepository
}

func NewConnectionUsecase(connRepo domain.ConnectionRepository, profileRepo domain.ProfileRepository) domain.ConnectionUsecase {
	return &connectionUsecase{connRepo: connRepo, profileRepo: profileRepo}
}

// gateFor recomputes the completion gate for one party from their current
// profile fields. Persisted completion state is never consulted. A nil
// profile fails the gate with every required field missing.
func gateFor(profile *domain.AlumniProfile, party string) *domain.GateResult {
	missing := completion.MissingRequired(profile)
	if len(missing) == 0 {
		return &domain.GateResult{CanConnect: true}
	}

	fields := make([]string, 0, len(missing))
	for _, mf := range missing {
		fields = append(fields, mf.Key)
	}
	reason := "Complete your profile to start networking"
	if party == "recipient" {
		reason = "This member has not completed their profile yet"
	}
	return &domain.GateResult{
		CanConnect:    false,
		Reason:        reason,
		Party:         party,
		MissingFields: fields,
	}
}

// SendRequest creates a pending connection. The gate is symmetric: both the
// requester and the recipient must pass before any row is written.
func (u *connectionUsecase) SendRequest(ctx context.Context, requesterID, recipientID string) (*domain.Connection, error) {
	if requesterID == recipientID {
		return nil, apperror.BadRequest("You cannot connect with yourself")
	}

	requester, err := u.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if gate := gateFor(requester, "requester"); !gate.CanConnect {
		return nil, apperror.Forbidden(gate.Reason).WithDetails(gate)
	}

	recipient, err := u.profileRepo.GetByUserID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperror.NotFound("Member not found")
	}
	if gate := gateFor(recipient, "recipient"); !gate.CanConnect {
		return nil, apperror.Forbidden(gate.Reason).WithDetails(gate)
	}

	existing, err := u.connRepo.FindBetween(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == domain.ConnectionRejected {
			// A rejected request may be retried
			if err := u.connRepo.Delete(ctx, existing.ID); err != nil {
				return nil, err
			}
		} else {
			return nil, apperror.Conflict("A connection between these users already exists")
		}
	}

	conn := &domain.Connection{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      domain.ConnectionPending,
	}
	if err := u.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Respond accepts or rejects a pending request. Only the recipient may act.
func (u *connectionUsecase) Respond(ctx context.Context, userID string, connectionID uuid.UUID, accept bool) (*domain.Connection, error) {
	conn, err := u.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, apperror.NotFound("Connection request not found")
	}
	if conn.RecipientID != userID {
		return nil, apperror.Forbidden("Only the recipient can respond to this request")
	}
	if conn.Status != domain.ConnectionPending {
		return nil, apperror.Conflict("This request has already been answered")
	}

	status := domain.ConnectionRejected
	if accept {
		status = domain.ConnectionAccepted
	}
	if err := u.connRepo.UpdateStatus(ctx, connectionID, status); err != nil {
		return nil, err
	}
	conn.Status = status
	return conn, nil
}

// Remove deletes a connection the caller is party to.
func (u *connectionUsecase) Remove(ctx context.Context, userID string, connectionID uuid.UUID) error {
	conn, err := u.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn == nil {
		return apperror.NotFound("Connection not found")
	}
	if conn.RequesterID != userID && conn.RecipientID != userID {
		return apperror.Forbidden("You are not part of this connection")
	}
	return u.connRepo.Delete(ctx, connectionID)
}

func (u *connectionUsecase) ListConnections(ctx context.Context, userID string, status domain.ConnectionStatus) ([]domain.Connection, error) {
	if status != "" && !status.IsValid() {
		return nil, apperror.BadRequest("Invalid connection status filter")
	}
	return u.connRepo.ListByUser(ctx, userID, status)
}

func (u *connectionUsecase) ListIncomingRequests(ctx context.Context, userID string) ([]domain.Connection, error) {
	return u.connRepo.ListIncomingPending(ctx, userID)
}

// CheckGate reports the caller's own gate state for the UI.
func (u *connectionUsecase) CheckGate(ctx context.Context, userID string) (*domain.GateResult, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return gateFor(profile, "requester"), nil
}
