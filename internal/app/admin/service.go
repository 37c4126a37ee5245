package admin

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/app/apperr"
	"github.com/uf-sase-hacks/registration-api/internal/app/registration"
	"github.com/uf-sase-hacks/registration-api/internal/domain"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/adminroster"
	clockport "github.com/uf-sase-hacks/registration-api/internal/ports/out/clock"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/resumestore"
)

// Service implements the admin console operations. Every operation verifies
// the actor against the roster before touching anything; a failed check
// short-circuits with no side effects.
type Service struct {
	roster   adminroster.Roster
	profiles profilerepo.Repository
	regs     registrationrepo.Repository
	resumes  resumestore.Store
	clk      clockport.Clock

	// LinkTTL bounds per-id signed resume links; SharedLinkTTL bounds the
	// bulk download page's links.
	LinkTTL       time.Duration
	SharedLinkTTL time.Duration
}

func NewService(roster adminroster.Roster, profiles profilerepo.Repository, regs registrationrepo.Repository, resumes resumestore.Store, clk clockport.Clock) *Service {
	return &Service{
		roster:        roster,
		profiles:      profiles,
		regs:          regs,
		resumes:       resumes,
		clk:           clk,
		LinkTTL:       5 * time.Minute,
		SharedLinkTTL: time.Hour,
	}
}

// Detail is one registration as shown on the admin review page.
type Detail struct {
	Entry registrationrepo.Entry
	State domain.State
}

// Link is the per-id result of a signed-link batch; URL is nil when that
// account's resume was unavailable.
type Link struct {
	AccountID domain.AccountID
	URL       *string
}

// SharedLink is a bulk-download entry for a participant who opted into
// resume sharing.
type SharedLink struct {
	AccountID domain.AccountID
	FullName  string
	Email     string
	URL       *string
}

// ListRegistrations returns entries matching the filter, newest first.
func (s *Service) ListRegistrations(ctx context.Context, actor domain.AccountID, f registrationrepo.Filter) ([]Detail, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, apperr.ValidationFailed(map[string]any{"status": "unknown status filter"})
	}
	entries, err := s.regs.List(ctx, f)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]Detail, 0, len(entries))
	for _, e := range entries {
		out = append(out, Detail{Entry: e, State: domain.DeriveState(e.Profile, e.Registration)})
	}
	return out, nil
}

// GetRegistration returns one entry for the review page.
func (s *Service) GetRegistration(ctx context.Context, actor, id domain.AccountID) (Detail, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return Detail{}, err
	}
	reg, err := s.regs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, registrationrepo.ErrNotFound) {
			return Detail{}, apperr.NotFound("registration not found")
		}
		return Detail{}, apperr.Storage(err)
	}
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return Detail{}, apperr.NotFound("profile not found")
		}
		return Detail{}, apperr.Storage(err)
	}
	e := registrationrepo.Entry{Registration: reg, Profile: p}
	return Detail{Entry: e, State: domain.DeriveState(p, reg)}, nil
}

// UpdateProfile applies a corrective profile edit, bypassing the edit lock.
// The submission runs through the same field validator as owner edits, so an
// administrator can never invalidate mandatory fields on a completed
// registration.
func (s *Service) UpdateProfile(ctx context.Context, actor, id domain.AccountID, in registration.ProfileInput) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	existing, err := s.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return apperr.NotFound("profile not found")
		}
		return apperr.Storage(err)
	}

	candidate, fe := registration.ValidateProfile(in)
	if len(fe) > 0 {
		return apperr.ValidationFailed(fe)
	}
	candidate.AccountID = id
	candidate.CreatedAt = existing.CreatedAt
	candidate.UpdatedAt = s.clk.Now()

	if err := s.profiles.Update(ctx, candidate); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// SetStatus applies one status to every id in the set as a single
// conditional update: all-or-nothing at the storage layer.
func (s *Service) SetStatus(ctx context.Context, actor domain.AccountID, ids []domain.AccountID, status domain.Status) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperr.EmptySelection()
	}
	if !status.Valid() {
		return apperr.ValidationFailed(map[string]any{"status": "unknown status"})
	}
	if err := s.regs.SetStatusAll(ctx, ids, status, s.clk.Now()); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// SetEditingLock toggles the edit lock for every id in the set; status is
// untouched.
func (s *Service) SetEditingLock(ctx context.Context, actor domain.AccountID, ids []domain.AccountID, locked bool) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperr.EmptySelection()
	}
	if err := s.regs.SetLockAll(ctx, ids, locked, s.clk.Now()); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// ResumeLinks fetches a short-lived signed link per id. A failure for one id
// never aborts the others; that id's entry carries a nil URL.
func (s *Service) ResumeLinks(ctx context.Context, actor domain.AccountID, ids []domain.AccountID) ([]Link, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, apperr.EmptySelection()
	}
	out := make([]Link, 0, len(ids))
	for _, id := range ids {
		url, err := s.resumes.SignedURL(ctx, domain.ResumePath(id), s.LinkTTL)
		if err != nil {
			out = append(out, Link{AccountID: id})
			continue
		}
		out = append(out, Link{AccountID: id, URL: &url})
	}
	return out, nil
}

// SharedResumeLinks returns links for every participant who opted into
// sharing and has a stored resume, for the bulk download page.
func (s *Service) SharedResumeLinks(ctx context.Context, actor domain.AccountID) ([]SharedLink, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	entries, err := s.regs.ListSharedWithResume(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	out := make([]SharedLink, 0, len(entries))
	for _, e := range entries {
		link := SharedLink{
			AccountID: e.Registration.AccountID,
			FullName:  e.Profile.FullName,
			Email:     e.Profile.Email,
		}
		if e.Registration.ResumePath != nil {
			if url, err := s.resumes.SignedURL(ctx, *e.Registration.ResumePath, s.SharedLinkTTL); err == nil {
				link.URL = &url
			}
		}
		out = append(out, link)
	}
	return out, nil
}

// Delete removes the stored resume (best effort, not-found ignored), then
// the registration rows, then the profile rows. If the registration delete
// fails, profiles are left untouched and the failure is reported.
func (s *Service) Delete(ctx context.Context, actor domain.AccountID, ids []domain.AccountID) error {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperr.EmptySelection()
	}
	for _, id := range ids {
		if err := s.resumes.Delete(ctx, domain.ResumePath(id)); err != nil && !errors.Is(err, resumestore.ErrNotFound) {
			return apperr.Storage(err)
		}
	}
	if err := s.regs.DeleteAll(ctx, ids); err != nil {
		return apperr.Storage(err)
	}
	if err := s.profiles.DeleteAll(ctx, ids); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"account_id", "full_name", "email", "school", "major", "tshirt",
	"country", "status", "editing_locked", "resume_updated_at",
}

// ExportCSV renders every registration joined with its profile subset,
// RFC-4180 quoted.
func (s *Service) ExportCSV(ctx context.Context, actor domain.AccountID) ([]byte, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	entries, err := s.regs.List(ctx, registrationrepo.Filter{})
	if err != nil {
		return nil, apperr.Storage(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, apperr.Storage(err)
	}
	for _, e := range entries {
		updatedAt := ""
		if e.Registration.ResumeUpdatedAt != nil {
			updatedAt = e.Registration.ResumeUpdatedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			string(e.Registration.AccountID),
			e.Profile.FullName,
			e.Profile.Email,
			e.Profile.School,
			string(e.Profile.Major),
			string(e.Profile.TShirt),
			e.Profile.Country,
			string(e.Registration.Status),
			strconv.FormatBool(e.Registration.EditingLocked),
			updatedAt,
		}
		if err := w.Write(row); err != nil {
			return nil, apperr.Storage(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperr.Storage(err)
	}
	return buf.Bytes(), nil
}

func (s *Service) requireAdmin(ctx context.Context, actor domain.AccountID) error {
	ok, err := s.roster.IsAdmin(ctx, actor)
	if err != nil {
		return apperr.Storage(err)
	}
	if !ok {
		return apperr.NotAuthorized()
	}
	return nil
}
