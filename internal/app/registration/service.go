package registration

import (
	"context"
	"errors"
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/app/apperr"
	"github.com/uf-sase-hacks/registration-api/internal/domain"
	clockport "github.com/uf-sase-hacks/registration-api/internal/ports/out/clock"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/resumestore"
)

// Service implements the participant-facing portal operations. Mutations are
// permitted only while the registration is unlocked; the lifecycle state is
// derived on every read, never stored.
type Service struct {
	profiles profilerepo.Repository
	regs     registrationrepo.Repository
	resumes  resumestore.Store
	clk      clockport.Clock

	// PreviewLinkTTL bounds the owner's signed resume link lifetime.
	PreviewLinkTTL time.Duration
}

func NewService(profiles profilerepo.Repository, regs registrationrepo.Repository, resumes resumestore.Store, clk clockport.Clock) *Service {
	return &Service{
		profiles:       profiles,
		regs:           regs,
		resumes:        resumes,
		clk:            clk,
		PreviewLinkTTL: 60 * time.Second,
	}
}

// EnsureRows creates the Profile and Registration rows for an account if they
// do not exist yet: create-if-absent, never overwrite. The identity's email
// is pre-filled; everything else starts empty. Safe to call on every
// authenticated access.
func (s *Service) EnsureRows(ctx context.Context, id domain.AccountID, email string) error {
	now := s.clk.Now()

	if _, err := s.profiles.Get(ctx, id); err != nil {
		if !errors.Is(err, profilerepo.ErrNotFound) {
			return apperr.Storage(err)
		}
		p := domain.Profile{
			AccountID: id,
			Email:     email,
			Dietary:   []domain.DietaryTag{},
			Race:      []domain.Race{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.profiles.Create(ctx, p); err != nil && !errors.Is(err, profilerepo.ErrAlreadyExists) {
			return apperr.Storage(err)
		}
	}

	if _, err := s.regs.Get(ctx, id); err != nil {
		if !errors.Is(err, registrationrepo.ErrNotFound) {
			return apperr.Storage(err)
		}
		r := domain.NewRegistration(id, now)
		if err := s.regs.Create(ctx, r); err != nil && !errors.Is(err, registrationrepo.ErrAlreadyExists) {
			return apperr.Storage(err)
		}
	}
	return nil
}

// GetMyRegistration returns the owner's rows with the derived lifecycle state.
func (s *Service) GetMyRegistration(ctx context.Context, id domain.AccountID) (View, error) {
	p, r, err := s.load(ctx, id)
	if err != nil {
		return View{}, err
	}
	return View{Profile: p, Registration: r, State: domain.DeriveState(p, r)}, nil
}

// UpdateProfileAndConsents is the combined onboarding/profile submission.
// Every field failure is collected before anything is written; on any failure
// no field is applied.
func (s *Service) UpdateProfileAndConsents(ctx context.Context, id domain.AccountID, pin ProfileInput, cin ConsentInput) (View, error) {
	existing, reg, err := s.load(ctx, id)
	if err != nil {
		return View{}, err
	}
	if !domain.CanEdit(domain.RoleOwner, reg) {
		return View{}, apperr.EditLocked()
	}

	candidate, fe := ValidateProfile(pin)
	for k, v := range ValidateConsents(cin) {
		fe[k] = v
	}
	if len(fe) > 0 {
		return View{}, apperr.ValidationFailed(fe)
	}

	now := s.clk.Now()
	candidate.AccountID = id
	candidate.CreatedAt = existing.CreatedAt
	candidate.UpdatedAt = now

	if err := s.profiles.Update(ctx, candidate); err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return View{}, apperr.NotFound("registration is not provisioned")
		}
		return View{}, apperr.Storage(err)
	}
	if err := s.regs.UpdateConsents(ctx, id, cin.Flags(), now); err != nil {
		return View{}, apperr.Storage(err)
	}

	return s.GetMyRegistration(ctx, id)
}

// SaveConsents updates the consent flags alone, under the same rules as the
// combined submission: required flags must all be set, so an active
// registration cannot revoke a required consent through this path.
func (s *Service) SaveConsents(ctx context.Context, id domain.AccountID, cin ConsentInput) error {
	reg, err := s.loadRegistration(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanEdit(domain.RoleOwner, reg) {
		return apperr.EditLocked()
	}
	if fe := ValidateConsents(cin); len(fe) > 0 {
		return apperr.ValidationFailed(fe)
	}
	if err := s.regs.UpdateConsents(ctx, id, cin.Flags(), s.clk.Now()); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// UploadResume validates and stores a resume, then records the path and
// update time together. Required consents must already be granted: this is
// the second observable completeness signal and must agree with the derived
// state the portal navigation uses.
func (s *Service) UploadResume(ctx context.Context, id domain.AccountID, data []byte, contentType string) error {
	reg, err := s.loadRegistration(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanEdit(domain.RoleOwner, reg) {
		return apperr.EditLocked()
	}
	if !reg.Consents.RequiredGranted() {
		return apperr.ValidationFailed(FieldErrors{
			"consents": "You must accept all required agreements before uploading a resume",
		})
	}
	if err := domain.ValidateResumeFile(data, contentType); err != nil {
		return apperr.ValidationFailed(FieldErrors{"resume": err.Error()})
	}

	path := domain.ResumePath(id)
	if err := s.resumes.Put(ctx, path, data, "application/pdf"); err != nil {
		return apperr.Storage(err)
	}
	if err := s.regs.SetResume(ctx, id, path, s.clk.Now()); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// MyResumeLink returns a short-lived signed URL for the owner's stored resume.
func (s *Service) MyResumeLink(ctx context.Context, id domain.AccountID) (string, error) {
	reg, err := s.loadRegistration(ctx, id)
	if err != nil {
		return "", err
	}
	if reg.ResumePath == nil {
		return "", apperr.NotFound("no resume uploaded")
	}
	url, err := s.resumes.SignedURL(ctx, *reg.ResumePath, s.PreviewLinkTTL)
	if err != nil {
		if errors.Is(err, resumestore.ErrNotFound) {
			return "", apperr.NotFound("no resume uploaded")
		}
		return "", apperr.Storage(err)
	}
	return url, nil
}

func (s *Service) load(ctx context.Context, id domain.AccountID) (domain.Profile, domain.Registration, error) {
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return domain.Profile{}, domain.Registration{}, apperr.NotFound("registration is not provisioned")
		}
		return domain.Profile{}, domain.Registration{}, apperr.Storage(err)
	}
	r, err := s.loadRegistration(ctx, id)
	if err != nil {
		return domain.Profile{}, domain.Registration{}, err
	}
	return p, r, nil
}

func (s *Service) loadRegistration(ctx context.Context, id domain.AccountID) (domain.Registration, error) {
	r, err := s.regs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, registrationrepo.ErrNotFound) {
			return domain.Registration{}, apperr.NotFound("registration is not provisioned")
		}
		return domain.Registration{}, apperr.Storage(err)
	}
	return r, nil
}
