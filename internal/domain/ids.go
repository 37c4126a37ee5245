package domain

// AccountID is the participant's account identifier as issued by the external
// identity provider. It is opaque to this service and keys both the Profile
// and the Registration row for a participant.
type AccountID string

// Role describes who is attempting a mutation on a registration.
type Role string

const (
	// RoleOwner is the participant the record belongs to.
	RoleOwner Role = "owner"
	// RoleAdmin is a verified administrator.
	RoleAdmin Role = "admin"
)
