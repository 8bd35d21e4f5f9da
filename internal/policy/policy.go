// Package policy is the single source of truth for role-gated access: which
// form fields a role may edit in a given mode, which fields it must fill, and
// which parts of the upstream record its submit is allowed to touch. Handlers
// and services consult it instead of deriving their own role booleans.
package policy

import (
	"jobtrack/internal/models"
	"jobtrack/internal/validation"
)

// Mode distinguishes the create form from the edit form.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Valid reports whether the mode is one of the two known form modes.
func (m Mode) Valid() bool {
	return m == ModeCreate || m == ModeEdit
}

// Field names the job form fields subject to policy decisions.
type Field string

const (
	FieldCompany  Field = "company"
	FieldPosition Field = "position"
	FieldStatus   Field = "status"
	FieldNotes    Field = "notes"
)

// JobFields lists every policy-governed job form field.
func JobFields() []Field {
	return []Field{FieldCompany, FieldPosition, FieldStatus, FieldNotes}
}

// FieldPolicy is the decision for one field: whether the form renders it
// unlocked, and whether a submit requires it to be non-empty. All four job
// fields stay visible in every mode; locked fields render read-only.
type FieldPolicy struct {
	Editable bool `json:"editable"`
	Required bool `json:"required"`
}

// ForField decides the policy for one field given the acting role and the
// form mode.
//
// Admins editing an existing record may change only the status, and must set
// one. Users editing their own record may change company, position and notes
// but never the status. The create form unlocks everything except that status
// starts from its default.
func ForField(role models.Role, mode Mode, field Field) FieldPolicy {
	if mode == ModeCreate {
		switch field {
		case FieldCompany, FieldPosition:
			return FieldPolicy{Editable: true, Required: true}
		default:
			return FieldPolicy{Editable: true, Required: false}
		}
	}

	if role == models.RoleAdmin {
		if field == FieldStatus {
			return FieldPolicy{Editable: true, Required: true}
		}
		return FieldPolicy{Editable: false, Required: false}
	}

	switch field {
	case FieldCompany, FieldPosition:
		return FieldPolicy{Editable: true, Required: true}
	case FieldNotes:
		return FieldPolicy{Editable: true, Required: false}
	default: // status is locked for non-admins
		return FieldPolicy{Editable: false, Required: false}
	}
}

// Fields returns the full policy table for a role and mode, keyed by field
// name. This is what the form renderer asks for.
func Fields(role models.Role, mode Mode) map[Field]FieldPolicy {
	table := make(map[Field]FieldPolicy, len(JobFields()))
	for _, f := range JobFields() {
		table[f] = ForField(role, mode, f)
	}
	return table
}

// AllowedStatuses is the status set in force for a role and mode: the
// creation set for new records, the review set for admin edits. A user edit
// never touches status, so its set is empty.
func AllowedStatuses(role models.Role, mode Mode) []models.Status {
	if mode == ModeCreate {
		return models.CreationStatuses()
	}
	if role == models.RoleAdmin {
		return models.ReviewStatuses()
	}
	return nil
}

// SubmitErrors is the submit gate: it runs the validators for every field the
// role may edit in this mode and additionally flags required fields left
// empty. An empty result means the submit may proceed to the gateway.
func SubmitErrors(role models.Role, mode Mode, job *models.JobApplication, notesLimit int) validation.FieldErrors {
	errs := validation.FieldErrors{}
	for field, fp := range Fields(role, mode) {
		if !fp.Editable {
			continue
		}
		var msg string
		switch field {
		case FieldCompany:
			msg = validation.Company(job.Company)
		case FieldPosition:
			msg = validation.Position(job.Position)
		case FieldStatus:
			if job.Status == "" && !fp.Required {
				continue // optional status falls back to its default
			}
			msg = validation.Status(job.Status, AllowedStatuses(role, mode))
		case FieldNotes:
			msg = validation.Notes(job.Notes, notesLimit)
		}
		if msg != "" {
			errs[string(field)] = msg
		}
	}
	return errs
}

// UpdatePayload derives the exact partial record a submit sends upstream.
// Only fields the role may edit are present: an admin edit carries status
// alone, a user edit carries company, position and notes and never status.
type UpdatePayload struct {
	Company  *string        `json:"company,omitempty"`
	Position *string        `json:"position,omitempty"`
	Status   *models.Status `json:"status,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
}

// PayloadFor builds the role-shaped update body from the submitted job.
func PayloadFor(role models.Role, job *models.JobApplication) UpdatePayload {
	if role == models.RoleAdmin {
		status := job.Status
		return UpdatePayload{Status: &status}
	}
	company := job.Company
	position := job.Position
	notes := job.Notes
	return UpdatePayload{Company: &company, Position: &position, Notes: &notes}
}

// CanManageUsers gates the account management screen and its routes.
func CanManageUsers(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanDelete gates the delete action on a job record. Deletion is owner-only
// for every role; admin oversight is limited to status review.
func CanDelete(identity models.SessionIdentity, job *models.JobApplication) bool {
	return job.UserID == identity.ID
}

// CanEdit gates the edit action on a job record: owners may edit their own
// records, admins may review (status-edit) any record.
func CanEdit(identity models.SessionIdentity, job *models.JobApplication) bool {
	if identity.IsAdmin() {
		return true
	}
	return job.UserID == identity.ID
}
