package domain

// State is the derived lifecycle position of a registration. It is computed
// from current row contents on every read and never persisted; storing it
// would create a second source of truth that can drift from the real data.
type State string

const (
	// StateOnboarding: rows exist but the consent gate is not yet satisfied.
	StateOnboarding State = "onboarding"
	// StateActive: consent gate satisfied, editing unlocked.
	StateActive State = "active"
	// StateLocked: editing locked by an administrator (any status).
	StateLocked State = "locked"
)

// OnboardingComplete is the consent gate: true iff every mandatory profile
// field is non-empty, every required consent flag is true, and a resume is
// stored. Optional flags never affect the result.
func OnboardingComplete(p Profile, r Registration) bool {
	return p.MandatoryFieldsComplete() &&
		r.Consents.RequiredGranted() &&
		r.ResumePath != nil
}

// DeriveState computes the lifecycle state for a provisioned registration.
// The lock dimension is orthogonal to status and takes precedence over the
// onboarding/active boundary: a locked record cannot be edited regardless.
func DeriveState(p Profile, r Registration) State {
	if r.EditingLocked {
		return StateLocked
	}
	if OnboardingComplete(p, r) {
		return StateActive
	}
	return StateOnboarding
}

// CanEdit decides whether a mutation to the registration's profile, consent,
// or resume fields is permitted. Administrators bypass the lock; owners may
// edit only while unlocked; anyone else may never edit.
func CanEdit(role Role, r Registration) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleOwner:
		return !r.EditingLocked
	default:
		return false
	}
}
