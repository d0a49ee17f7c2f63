package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// AlumniProfile fields
	"Name":           "Full Name",
	"Email":          "Email Address",
	"Phone":          "Phone Number",
	"Location":       "Location",
	"Bio":            "Bio",
	"GraduationYear": "Graduation Year",
	"Degree":         "Degree",
	"Major":          "Major",
	"CurrentTitle":   "Current Job Title",
	"CurrentCompany": "Current Company",
	"LinkedinURL":    "LinkedIn URL",
	"GithubURL":      "GitHub URL",
	"WebsiteURL":     "Website URL",
	"AvatarURL":      "Profile Photo URL",
	"Skills":         "Skills",
	"Interests":      "Interests",

	// Job fields
	"Title":           "Job Title",
	"Company":         "Company",
	"Description":     "Description",
	"JobType":         "Job Type",
	"ExperienceLevel": "Experience Level",
	"ApplyURL":        "Application URL",
	"SalaryMin":       "Minimum Salary",
	"SalaryMax":       "Maximum Salary",
	"Deadline":        "Application Deadline",

	// Event fields
	"StartsAt":    "Start Time",
	"EndsAt":      "End Time",
	"MeetingLink": "Meeting Link",
	"Capacity":    "Capacity",

	// Messaging / contact
	"Body":    "Message",
	"Subject": "Subject",
	"Message": "Message",
}

// ValidationRules contains max/min values for validation messages
var ValidationRules = map[string]map[string]interface{}{
	"Bio":     {"max": 2000},
	"Title":   {"min": 3, "max": 120},
	"Phone":   {"min": 7, "max": 15},
	"Body":    {"max": 4000},
	"Message": {"max": 4000},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "url", "http_url":
		return fmt.Sprintf("%s: invalid URL", label)

	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation (. ' - /)", label)

	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, with/without +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)

	case "grad_year":
		return fmt.Sprintf("%s: must be a plausible graduation year", label)

	case "gtefield":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, getFieldLabel(param))

	case "gtfield":
		return fmt.Sprintf("%s: must be after %s", label, getFieldLabel(param))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
