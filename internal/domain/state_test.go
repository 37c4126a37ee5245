package domain

import (
	"testing"
	"time"
)

func completeProfile() Profile {
	return Profile{
		AccountID:   "acct-1",
		Email:       "jane@example.com",
		PhoneNumber: "3525550100",
		Age:         "21",
		School:      "University of Florida",
		Country:     "United States",
		LinkedInURL: "https://linkedin.com/in/jane",
	}
}

func grantedConsents() ConsentFlags {
	return ConsentFlags{
		AccuracyAgreement:  true,
		TermsAndConditions: true,
		CodeOfConduct:      true,
		MLHCodeOfConduct:   true,
		MLHDataSharing:     true,
	}
}

func TestOnboardingComplete(t *testing.T) {
	t.Parallel()

	path := "acct-1/resume.pdf"
	base := Registration{AccountID: "acct-1", Consents: grantedConsents(), ResumePath: &path}

	if !OnboardingComplete(completeProfile(), base) {
		t.Fatalf("expected complete")
	}

	// Each mandatory profile field is individually load-bearing.
	mutations := []struct {
		name string
		mut  func(*Profile)
	}{
		{"email", func(p *Profile) { p.Email = "" }},
		{"phone", func(p *Profile) { p.PhoneNumber = "" }},
		{"age", func(p *Profile) { p.Age = "" }},
		{"school", func(p *Profile) { p.School = "" }},
		{"country", func(p *Profile) { p.Country = "" }},
		{"linkedin", func(p *Profile) { p.LinkedInURL = "" }},
	}
	for _, m := range mutations {
		m := m
		t.Run("missing "+m.name, func(t *testing.T) {
			t.Parallel()
			p := completeProfile()
			m.mut(&p)
			if OnboardingComplete(p, base) {
				t.Fatalf("expected incomplete without %s", m.name)
			}
		})
	}

	// Each required consent flag is individually load-bearing; optional
	// flags never matter.
	consentMutations := []struct {
		name string
		mut  func(*ConsentFlags)
	}{
		{"accuracy", func(c *ConsentFlags) { c.AccuracyAgreement = false }},
		{"terms", func(c *ConsentFlags) { c.TermsAndConditions = false }},
		{"conduct", func(c *ConsentFlags) { c.CodeOfConduct = false }},
		{"mlh conduct", func(c *ConsentFlags) { c.MLHCodeOfConduct = false }},
		{"mlh data", func(c *ConsentFlags) { c.MLHDataSharing = false }},
	}
	for _, m := range consentMutations {
		m := m
		t.Run("revoked "+m.name, func(t *testing.T) {
			t.Parallel()
			r := base
			r.Consents = grantedConsents()
			m.mut(&r.Consents)
			if OnboardingComplete(completeProfile(), r) {
				t.Fatalf("expected incomplete with %s revoked", m.name)
			}
		})
	}

	t.Run("optional flags irrelevant", func(t *testing.T) {
		t.Parallel()
		r := base
		r.Consents.CanPhotograph = false
		r.Consents.ShareResumeWithCompanies = false
		r.Consents.MLHCommunications = false
		if !OnboardingComplete(completeProfile(), r) {
			t.Fatalf("optional flags must not affect completeness")
		}
	})

	t.Run("missing resume", func(t *testing.T) {
		t.Parallel()
		r := base
		r.ResumePath = nil
		if OnboardingComplete(completeProfile(), r) {
			t.Fatalf("expected incomplete without resume")
		}
	})
}

func TestDeriveState(t *testing.T) {
	t.Parallel()

	path := "acct-1/resume.pdf"
	complete := Registration{Consents: grantedConsents(), ResumePath: &path}

	if got := DeriveState(completeProfile(), complete); got != StateActive {
		t.Fatalf("state = %q, want active", got)
	}

	incomplete := Registration{}
	if got := DeriveState(completeProfile(), incomplete); got != StateOnboarding {
		t.Fatalf("state = %q, want onboarding", got)
	}

	// Lock wins regardless of completeness or status.
	locked := complete
	locked.EditingLocked = true
	for _, st := range Statuses {
		locked.Status = st
		if got := DeriveState(completeProfile(), locked); got != StateLocked {
			t.Fatalf("state with status %q = %q, want locked", st, got)
		}
	}
	lockedIncomplete := Registration{EditingLocked: true}
	if got := DeriveState(completeProfile(), lockedIncomplete); got != StateLocked {
		t.Fatalf("locked incomplete = %q, want locked", got)
	}
}

func TestCanEdit(t *testing.T) {
	t.Parallel()

	unlocked := Registration{}
	locked := Registration{EditingLocked: true}

	cases := []struct {
		name string
		role Role
		reg  Registration
		want bool
	}{
		{"owner unlocked", RoleOwner, unlocked, true},
		{"owner locked", RoleOwner, locked, false},
		{"admin unlocked", RoleAdmin, unlocked, true},
		{"admin locked", RoleAdmin, locked, true},
		{"unknown role unlocked", Role("guest"), unlocked, false},
		{"unknown role locked", Role("guest"), locked, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CanEdit(tc.role, tc.reg); got != tc.want {
				t.Fatalf("CanEdit = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewRegistration(t *testing.T) {
	t.Parallel()

	now := time.Unix(500, 0).UTC()
	r := NewRegistration("acct-9", now)
	if r.Status != StatusPending || r.EditingLocked {
		t.Fatalf("unexpected initial row: %+v", r)
	}
	if r.ResumePath != nil || r.ResumeUpdatedAt != nil {
		t.Fatalf("new registration must have no resume: %+v", r)
	}
	if (r.Consents != ConsentFlags{}) {
		t.Fatalf("new registration must have nothing agreed: %+v", r.Consents)
	}
	if !r.CreatedAt.Equal(now) || !r.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not stamped: %+v", r)
	}
}
