package completion_test

import (
	"testing"

	"go-alumni-backend/internal/completion"
	"go-alumni-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fullProfile() *domain.AlumniProfile {
	return &domain.AlumniProfile{
		Name:           "Ava Lee",
		Email:          "a@x.com",
		Phone:          "+6281234567890",
		Location:       "Jakarta",
		Bio:            "Software engineer with a decade of experience building distributed systems and mentoring juniors.",
		GraduationYear: 2020,
		Degree:         "BSc",
		Major:          "CS",
		CurrentTitle:   "Staff Engineer",
		CurrentCompany: "Acme",
		LinkedinURL:    "https://linkedin.com/in/avalee",
		GithubURL:      "https://github.com/avalee",
		WebsiteURL:     "https://avalee.dev",
		AvatarURL:      "https://cdn.example.com/ava.png",
		Skills:         []string{"Go", "Postgres", "Kubernetes"},
		Interests:      []string{"Mentoring", "Open Source"},
	}
}

func requiredOnlyProfile() *domain.AlumniProfile {
	return &domain.AlumniProfile{
		Name:           "Ava Lee",
		Email:          "a@x.com",
		GraduationYear: 2020,
		Degree:         "BSc",
		Major:          "CS",
		Skills:         []string{},
		Interests:      []string{},
	}
}

func TestCalculateDeterminism(t *testing.T) {
	p := fullProfile()
	first := completion.Percentage(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, completion.Percentage(p))
	}
}

func TestCalculateBounds(t *testing.T) {
	cases := []*domain.AlumniProfile{
		nil,
		{},
		requiredOnlyProfile(),
		fullProfile(),
		{Bio: "short"},
		{Skills: []string{"Go"}, Interests: []string{"x"}},
	}
	for _, p := range cases {
		pct := completion.Percentage(p)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

func TestNilAndEmptyProfileYieldZero(t *testing.T) {
	assert.Equal(t, 0, completion.Percentage(nil))
	assert.Equal(t, 0, completion.Percentage(&domain.AlumniProfile{}))

	b := completion.Calculate(nil)
	assert.Equal(t, 0, b.Percentage)
	assert.Len(t, b.Sections, 5)
	for _, s := range b.Sections {
		assert.Zero(t, s.Complete)
	}
}

func TestWeightsSumToHundred(t *testing.T) {
	b := completion.Calculate(nil)
	sum := 0
	for _, s := range b.Sections {
		sum += s.Weight
	}
	assert.Equal(t, 100, sum)

	assert.Equal(t, 100, completion.Percentage(fullProfile()))
}

func TestSingleFieldMovesScoreByAtMostItsShare(t *testing.T) {
	// Adding phone fills 1 of 5 basic fields: at most 30/5 = 6 points.
	p := requiredOnlyProfile()
	before := completion.Percentage(p)
	p.Phone = "+6281234567890"
	after := completion.Percentage(p)
	assert.Greater(t, after, before)
	assert.LessOrEqual(t, after-before, 6)
}

func TestGateDependsOnlyOnRequiredFields(t *testing.T) {
	p := requiredOnlyProfile()
	assert.True(t, completion.IsComplete(p))

	// Mutating non-required fields never flips the gate.
	p.AvatarURL = "https://cdn.example.com/ava.png"
	p.Bio = "x"
	p.Skills = []string{"Go", "Postgres", "Kubernetes", "Redis"}
	assert.True(t, completion.IsComplete(p))

	p.Major = ""
	assert.False(t, completion.IsComplete(p))
}

func TestGatePercentageDecoupled(t *testing.T) {
	p := requiredOnlyProfile()
	assert.True(t, completion.IsComplete(p))
	assert.Less(t, completion.Percentage(p), 100)
}

func TestWorkedScenario(t *testing.T) {
	// Basic 2/5 = 40%, Education 3/3 = 100%, rest 0%
	// => 0.40*30 + 1.00*25 = 37
	p := requiredOnlyProfile()
	assert.Equal(t, 37, completion.Percentage(p))
	assert.True(t, completion.IsComplete(p))

	b := completion.Calculate(p)
	assert.Equal(t, 2, b.Sections[0].Complete)
	assert.Equal(t, 40, b.Sections[0].Score)
	assert.Equal(t, 100, b.Sections[1].Score)
	assert.Equal(t, 0, b.Sections[2].Score)
}

func TestBioRequiresFiftyCharacters(t *testing.T) {
	p := requiredOnlyProfile()
	base := completion.Percentage(p)

	p.Bio = "too short to count"
	assert.Equal(t, base, completion.Percentage(p))

	p.Bio = "This bio is definitely long enough to satisfy the fifty character minimum."
	assert.Greater(t, completion.Percentage(p), base)
}

func TestListMinimums(t *testing.T) {
	p := requiredOnlyProfile()
	base := completion.Percentage(p)

	p.Skills = []string{"Go", "SQL"}
	assert.Equal(t, base, completion.Percentage(p), "two skills should not count")
	p.Skills = []string{"Go", "SQL", "Docker"}
	assert.Greater(t, completion.Percentage(p), base)

	p2 := requiredOnlyProfile()
	p2.Interests = []string{"Hiking"}
	assert.Equal(t, base, completion.Percentage(p2), "one interest should not count")
	p2.Interests = []string{"Hiking", "Chess"}
	assert.Greater(t, completion.Percentage(p2), base)
}

func TestMissingRequiredLabels(t *testing.T) {
	missing := completion.MissingRequired(&domain.AlumniProfile{Name: "Ava"})
	keys := make([]string, 0, len(missing))
	for _, m := range missing {
		keys = append(keys, m.Key)
		assert.NotEmpty(t, m.Label)
	}
	assert.Equal(t, []string{"email", "graduation_year", "degree", "major"}, keys)

	assert.Len(t, completion.MissingRequired(nil), 5)
	assert.Empty(t, completion.MissingRequired(requiredOnlyProfile()))
}

func TestNextStepsRankingAndTruncation(t *testing.T) {
	t.Run("required fields come first as high priority", func(t *testing.T) {
		steps := completion.NextSteps(&domain.AlumniProfile{Name: "Ava", Email: "a@x.com"})
		assert.NotEmpty(t, steps)
		assert.Equal(t, completion.PriorityHigh, steps[0].Priority)
		assert.Equal(t, "required for full access", steps[0].Impact)
	})

	t.Run("never more than five suggestions", func(t *testing.T) {
		assert.LessOrEqual(t, len(completion.NextSteps(nil)), 5)
		assert.LessOrEqual(t, len(completion.NextSteps(&domain.AlumniProfile{})), 5)
	})

	t.Run("partial sections rank medium before untouched sections", func(t *testing.T) {
		steps := completion.NextSteps(requiredOnlyProfile())
		// No required fields missing, so first entries are medium.
		assert.Equal(t, completion.PriorityMedium, steps[0].Priority)
		sawLowAfterMedium := false
		for i := 1; i < len(steps); i++ {
			if steps[i-1].Priority == completion.PriorityLow && steps[i].Priority == completion.PriorityMedium {
				sawLowAfterMedium = true
			}
		}
		assert.False(t, sawLowAfterMedium, "medium suggestions must precede low ones")
	})

	t.Run("complete profile has no suggestions", func(t *testing.T) {
		assert.Empty(t, completion.NextSteps(fullProfile()))
	})

	t.Run("stable across calls", func(t *testing.T) {
		p := requiredOnlyProfile()
		assert.Equal(t, completion.NextSteps(p), completion.NextSteps(p))
	})
}
