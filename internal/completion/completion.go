package completion

import (
	"math"
	"strconv"
	"strings"

	"go-alumni-backend/internal/domain"
)

// Single source of truth for profile completion: section/weight/field rules
// live here and nowhere else. Both the profile write path and the connection
// gate call into this package.

const (
	minBioLength = 50
	minSkills    = 3
	minInterests = 2

	maxSuggestions = 5
)

// Section names, in display/ranking order.
const (
	SectionBasic        = "basic"
	SectionEducation    = "education"
	SectionProfessional = "professional"
	SectionSocial       = "social"
	SectionAdditional   = "additional"
)

type fieldRule struct {
	key      string
	label    string
	required bool
	complete func(p *domain.AlumniProfile) bool
}

type section struct {
	name   string
	weight int
	fields []fieldRule
}

func nonEmpty(get func(p *domain.AlumniProfile) string) func(*domain.AlumniProfile) bool {
	return func(p *domain.AlumniProfile) bool {
		return strings.TrimSpace(get(p)) != ""
	}
}

// Weights sum to 100.
var sections = []section{
	{
		name:   SectionBasic,
		weight: 30,
		fields: []fieldRule{
			{key: "name", label: "Full Name", required: true, complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.Name })},
			{key: "email", label: "Email Address", required: true, complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.Email })},
			{key: "phone", label: "Phone Number", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.Phone })},
			{key: "location", label: "Location", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.Location })},
			{key: "bio", label: "Bio (at least 50 characters)", complete: func(p *domain.AlumniProfile) bool {
				return len(strings.TrimSpace(p.Bio)) >= minBioLength
			}},
		},
	},
	{
		name:   SectionEducation,
		weight: 25,
		fields: []fieldRule{
			{key: "graduation_year", label: "Graduation Year", required: true, complete: func(p *domain.AlumniProfile) bool {
				return p.GraduationYear != 0
			}},
			{key: "degree", label: "Degree", required: true, complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.Degree })},
			{key: "major", label: "Major", required: true, complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.Major })},
		},
	},
	{
		name:   SectionProfessional,
		weight: 25,
		fields: []fieldRule{
			{key: "current_title", label: "Current Job Title", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.CurrentTitle })},
			{key: "current_company", label: "Current Company", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.CurrentCompany })},
		},
	},
	{
		name:   SectionSocial,
		weight: 10,
		fields: []fieldRule{
			{key: "linkedin_url", label: "LinkedIn Profile", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.LinkedinURL })},
			{key: "github_url", label: "GitHub Profile", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.GithubURL })},
			{key: "website_url", label: "Personal Website", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.WebsiteURL })},
		},
	},
	{
		name:   SectionAdditional,
		weight: 10,
		fields: []fieldRule{
			{key: "avatar_url", label: "Profile Photo", complete: nonEmpty(func(p *domain.AlumniProfile) string { return p.AvatarURL })},
			{key: "skills", label: "Skills (at least 3)", complete: func(p *domain.AlumniProfile) bool {
				return len(p.Skills) >= minSkills
			}},
			{key: "interests", label: "Interests (at least 2)", complete: func(p *domain.AlumniProfile) bool {
				return len(p.Interests) >= minInterests
			}},
		},
	},
}

// SectionScore is the per-section part of a Breakdown.
type SectionScore struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Complete int    `json:"complete"`
	Total    int    `json:"total"`
	Score    int    `json:"score"` // 0-100 within the section
}

// Breakdown is the full result of a completion calculation.
type Breakdown struct {
	Percentage int            `json:"percentage"`
	Sections   []SectionScore `json:"sections"`
}

// MissingField identifies an incomplete required field with its UI label.
type MissingField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Calculate computes the weighted completion breakdown. Pure: no I/O, safe
// for concurrent use. A nil profile yields a zeroed breakdown.
func Calculate(p *domain.AlumniProfile) Breakdown {
	b := Breakdown{Sections: make([]SectionScore, 0, len(sections))}

	var weighted float64
	var totalWeight int
	for _, sec := range sections {
		ss := SectionScore{Name: sec.name, Weight: sec.weight, Total: len(sec.fields)}
		if p != nil {
			for _, f := range sec.fields {
				if f.complete(p) {
					ss.Complete++
				}
			}
		}
		if ss.Total > 0 {
			ss.Score = int(math.Round(float64(ss.Complete) / float64(ss.Total) * 100))
		}
		weighted += float64(ss.Complete) / float64(ss.Total) * float64(sec.weight)
		totalWeight += sec.weight
		b.Sections = append(b.Sections, ss)
	}

	pct := int(math.Round(weighted / float64(totalWeight) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	b.Percentage = pct
	return b
}

// Percentage returns just the overall weighted score.
func Percentage(p *domain.AlumniProfile) int {
	return Calculate(p).Percentage
}

// IsComplete reports whether all required fields are filled. Independent of
// the weighted percentage: a profile can gate true well below 100%.
func IsComplete(p *domain.AlumniProfile) bool {
	return len(MissingRequired(p)) == 0
}

// MissingRequired returns the incomplete required fields in rule order.
func MissingRequired(p *domain.AlumniProfile) []MissingField {
	missing := []MissingField{}
	for _, sec := range sections {
		for _, f := range sec.fields {
			if !f.required {
				continue
			}
			if p == nil || !f.complete(p) {
				missing = append(missing, MissingField{Key: f.key, Label: f.label})
			}
		}
	}
	return missing
}

// Suggestion priorities, high to low.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is one actionable next step for the profile owner.
type Suggestion struct {
	Priority string   `json:"priority"`
	Action   string   `json:"action"`
	Fields   []string `json:"fields"`
	Impact   string   `json:"impact"`
}

// NextSteps ranks up to 5 suggestions: outstanding required fields first,
// then partially complete sections in declaration order, then untouched
// sections. Deterministic for a given profile.
func NextSteps(p *domain.AlumniProfile) []Suggestion {
	var out []Suggestion

	for _, mf := range MissingRequired(p) {
		out = append(out, Suggestion{
			Priority: PriorityHigh,
			Action:   "Add your " + mf.Label,
			Fields:   []string{mf.Key},
			Impact:   "required for full access",
		})
	}

	b := Calculate(p)
	for _, ss := range b.Sections {
		if ss.Score > 0 && ss.Score < 100 {
			out = append(out, Suggestion{
				Priority: PriorityMedium,
				Action:   "Finish your " + ss.Name + " section",
				Fields:   sectionFieldKeys(ss.Name),
				Impact:   strconv.Itoa(100-ss.Score) + "% of the section remaining",
			})
		}
	}
	for _, ss := range b.Sections {
		if ss.Score == 0 {
			out = append(out, Suggestion{
				Priority: PriorityLow,
				Action:   "Start your " + ss.Name + " section",
				Fields:   sectionFieldKeys(ss.Name),
				Impact:   "worth " + strconv.Itoa(ss.Weight) + "% of your score",
			})
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func sectionFieldKeys(name string) []string {
	for _, sec := range sections {
		if sec.name == name {
			keys := make([]string, 0, len(sec.fields))
			for _, f := range sec.fields {
				keys = append(keys, f.key)
			}
			return keys
		}
	}
	return nil
}
