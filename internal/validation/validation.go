// Package validation holds the per-field rules for the job and account forms.
// Every function is pure: it maps a raw field value to an error message, with
// "" meaning the value is acceptable. Callers decide which fields are relevant
// for the current role and mode (see the policy package).
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"jobtrack/internal/models"
)

const (
	// MinNameLen and MaxNameLen bound company, position and employee names
	// after trimming.
	MinNameLen = 2
	MaxNameLen = 100

	// DefaultNotesLimit is used when the caller does not supply a limit.
	// The limit is a parameter because different entry forms historically
	// enforced different values.
	DefaultNotesLimit = 1000

	// MinPasswordLen applies to new account passwords.
	MinPasswordLen = 6
)

var (
	// localpart@domain.tld: no whitespace around the @, at least one dot
	// in the domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Exactly ten digits, leading zero.
	phonePattern = regexp.MustCompile(`^0\d{9}$`)
)

func boundedName(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Sprintf("%s is required", field)
	}
	if utf8.RuneCountInString(trimmed) < MinNameLen {
		return fmt.Sprintf("%s must be at least %d characters", field, MinNameLen)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return fmt.Sprintf("%s must be at most %d characters", field, MaxNameLen)
	}
	return ""
}

// Company validates the company field of a job application.
func Company(value string) string {
	return boundedName("company", value)
}

// Position validates the position field of a job application.
func Position(value string) string {
	return boundedName("position", value)
}

// EmployeeName validates the optional employee name attribute.
func EmployeeName(value string) string {
	return boundedName("employee name", value)
}

// Status validates membership in the status set in force for the calling
// flow (creation and admin review use different sets).
func Status(value models.Status, allowed []models.Status) string {
	if value.In(allowed) {
		return ""
	}
	names := make([]string, len(allowed))
	for i, s := range allowed {
		names[i] = string(s)
	}
	return fmt.Sprintf("status must be one of: %s", strings.Join(names, ", "))
}

// Notes validates the notes field against the given length limit. Pass
// DefaultNotesLimit unless the form is configured otherwise. Notes are
// optional, so an empty value is always acceptable.
func Notes(value string, limit int) string {
	if limit <= 0 {
		limit = DefaultNotesLimit
	}
	if utf8.RuneCountInString(value) > limit {
		return fmt.Sprintf("notes must be at most %d characters", limit)
	}
	return ""
}

// Email validates the account email field.
func Email(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "email is required"
	}
	if !emailPattern.MatchString(trimmed) {
		return "email must be a valid address"
	}
	return ""
}

// PhoneNumber validates the account phone number field.
func PhoneNumber(value string) string {
	if !phonePattern.MatchString(value) {
		return "phone number must be 10 digits starting with 0"
	}
	return ""
}

// Password validates a new account password. Existing passwords are never
// re-displayed or re-validated.
func Password(value string) string {
	if value == "" {
		return "password is required"
	}
	if utf8.RuneCountInString(value) < MinPasswordLen {
		return fmt.Sprintf("password must be at least %d characters", MinPasswordLen)
	}
	return ""
}

func requiredField(field, value string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", field)
	}
	return ""
}

// FirstName validates the account first name field.
func FirstName(value string) string {
	return requiredField("first name", value)
}

// LastName validates the account last name field.
func LastName(value string) string {
	return requiredField("last name", value)
}

// Department validates the account department field.
func Department(value string) string {
	return requiredField("department", value)
}

// FieldErrors maps a form field name to its inline error message. A field
// absent from the map is valid.
type FieldErrors map[string]string

// collect drops empty messages so valid fields never appear in the result.
func collect(pairs map[string]string) FieldErrors {
	errs := FieldErrors{}
	for field, msg := range pairs {
		if msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// JobForm validates a full job application form: company, position, status
// (against the given set) and notes (against the given limit). The result is
// empty when the form is submittable.
func JobForm(job *models.JobApplication, allowed []models.Status, notesLimit int) FieldErrors {
	return collect(map[string]string{
		"company":  Company(job.Company),
		"position": Position(job.Position),
		"status":   Status(job.Status, allowed),
		"notes":    Notes(job.Notes, notesLimit),
	})
}

// UserForm validates a full account form. withPassword is false when editing
// an existing account without changing the password.
func UserForm(user *models.UserAccount, withPassword bool) FieldErrors {
	pairs := map[string]string{
		"firstName":   FirstName(user.FirstName),
		"lastName":    LastName(user.LastName),
		"email":       Email(user.Email),
		"phoneNumber": PhoneNumber(user.PhoneNumber),
		"department":  Department(user.Department),
	}
	if withPassword {
		pairs["password"] = Password(user.Password)
	}
	if !user.AccountType.Valid() {
		pairs["accountType"] = "account type must be USER or ADMIN"
	}
	return collect(pairs)
}
