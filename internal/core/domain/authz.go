package domain

// AccessRequirement is a state the authorization gate must verify on the
// acting user before a protected operation runs. The two requirements are
// independent axes: admin operations demand AdminRole only, so a deactivated
// admin keeps admin rights while losing access to derived data.
type AccessRequirement string

const (
	// ActiveAccount requires the acting user's active flag to be set.
	ActiveAccount AccessRequirement = "ACTIVE"
	// AdminRole requires the acting user's admin flag to be set.
	AdminRole AccessRequirement = "ADMIN"
)
