package models

// --- Account Role Enum ---
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is one of the two known account types.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// --- Application Status Enum ---
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
)

// CreationStatuses is the set a user may pick when recording a new application.
// StatusApplied is the default when none is given.
func CreationStatuses() []Status {
	return []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}
}

// ReviewStatuses is the set an admin may move an application into.
func ReviewStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected}
}

// AllStatuses is the union of the creation and review sets.
func AllStatuses() []Status {
	return []Status{
		StatusApplied, StatusInterview, StatusOffer,
		StatusRejected, StatusPending, StatusApproved,
	}
}

// In reports whether the status is a member of the given set.
func (s Status) In(set []Status) bool {
	for _, allowed := range set {
		if s == allowed {
			return true
		}
	}
	return false
}

// JobApplication is a tracked application as stored by the remote collection.
// IDs are opaque strings assigned by the remote store on creation. DateAdded
// is stamped once at creation and never rewritten.
type JobApplication struct {
	ID           string `json:"id,omitempty"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	Status       Status `json:"status"`
	Notes        string `json:"notes"`
	DateAdded    string `json:"dateAdded"`
	UserID       string `json:"userId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	SubmittedBy  string `json:"submittedBy,omitempty"`
	ApprovedBy   string `json:"approvedBy,omitempty"`
}

// UserAccount is an account record in the remote user collection. Password is
// stored as-is by the remote store (see the legacy authenticator notes) and is
// never echoed back by this API. CreatedAt is epoch seconds.
type UserAccount struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Department  string `json:"department"`
	Password    string `json:"password,omitempty"`
	AccountType Role   `json:"accountType"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

// SessionIdentity is the authenticated caller, reconstructed from the session
// store on every request. It is the only identity components may consult.
type SessionIdentity struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
}

// IsAdmin is a convenience for role checks that are not field policy
// decisions (those go through the policy package).
func (s SessionIdentity) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// BulkDeleteResult is the aggregate outcome of a concurrent multi-delete.
// There is no atomicity across the batch; FailedIDs lists what remains.
type BulkDeleteResult struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}
