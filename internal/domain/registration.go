package domain

import "time"

// ConsentFlags are the agreement checkboxes stored on a registration.
// The first three plus the MLH pair are required for onboarding completion;
// the rest are optional and never affect completeness.
type ConsentFlags struct {
	AccuracyAgreement  bool
	TermsAndConditions bool
	CodeOfConduct      bool
	MLHCodeOfConduct   bool
	MLHDataSharing     bool

	CanPhotograph            bool
	ShareResumeWithCompanies bool
	MLHCommunications        bool
}

// RequiredGranted reports whether every required consent flag is true.
func (c ConsentFlags) RequiredGranted() bool {
	return c.AccuracyAgreement &&
		c.TermsAndConditions &&
		c.CodeOfConduct &&
		c.MLHCodeOfConduct &&
		c.MLHDataSharing
}

// Registration is the status/consent/resume record for one participant,
// 1:1 with Profile and keyed by the same account id.
type Registration struct {
	AccountID AccountID

	Status        Status
	EditingLocked bool
	Consents      ConsentFlags

	// ResumePath points at the stored resume object; nil means no resume.
	// ResumeUpdatedAt is set exactly when ResumePath changes.
	ResumePath      *string
	ResumeUpdatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRegistration is the initial row created the first time a participant is
// seen: pending, unlocked, nothing agreed, no resume.
func NewRegistration(id AccountID, now time.Time) Registration {
	return Registration{
		AccountID: id,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy (the pointer fields are the only shared state).
func (r Registration) Clone() Registration {
	out := r
	if r.ResumePath != nil {
		v := *r.ResumePath
		out.ResumePath = &v
	}
	if r.ResumeUpdatedAt != nil {
		v := *r.ResumeUpdatedAt
		out.ResumeUpdatedAt = &v
	}
	return out
}
