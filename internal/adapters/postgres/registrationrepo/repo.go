package registrationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/uf-sase-hacks/registration-api/internal/adapters/postgres"
	"github.com/uf-sase-hacks/registration-api/internal/domain"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/registrationrepo"
)

// Repo is a Postgres implementation of registrationrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const registrationColumns = `
	r.user_id,
	r.status,
	r.editing_locked,
	r.accuracy_agreement,
	r.terms_and_conditions,
	r.code_of_conduct,
	r.mlh_code_of_conduct,
	r.mlh_data_sharing,
	r.can_photograph,
	r.share_resume_with_companies,
	r.mlh_communications,
	r.resume_url,
	r.resume_updated_at,
	r.created_at,
	r.updated_at
`

// Profile columns are coalesced so a registration without a profile row
// still scans (LEFT JOIN semantics match the memory adapter).
const joinedProfileColumns = `
	COALESCE(p.id, r.user_id),
	COALESCE(p.first_name, ''),
	COALESCE(p.last_name, ''),
	COALESCE(p.full_name, ''),
	COALESCE(p.email, ''),
	COALESCE(p.phone_number, ''),
	COALESCE(p.age, ''),
	COALESCE(p.linkedin_url, ''),
	COALESCE(p.school, ''),
	COALESCE(p.major, ''),
	COALESCE(p.grad_year, ''),
	COALESCE(p.level_of_study, ''),
	COALESCE(p.engineering_skill, ''),
	COALESCE(p.hackathon_experience, ''),
	COALESCE(p.address_line1, ''),
	COALESCE(p.address_line2, ''),
	COALESCE(p.city, ''),
	COALESCE(p.state, ''),
	COALESCE(p.zip_code, ''),
	COALESCE(p.country, ''),
	COALESCE(p.tshirt, ''),
	COALESCE(p.dietary, '{}'),
	COALESCE(p.accessibility, ''),
	COALESCE(p.gender, ''),
	COALESCE(p.race, '{}'),
	COALESCE(p.created_at, r.created_at),
	COALESCE(p.updated_at, r.updated_at)
`

func (r *Repo) Create(ctx context.Context, reg domain.Registration) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(reg.AccountID))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO registrations (
			user_id,
			status,
			editing_locked,
			accuracy_agreement,
			terms_and_conditions,
			code_of_conduct,
			mlh_code_of_conduct,
			mlh_data_sharing,
			can_photograph,
			share_resume_with_companies,
			mlh_communications,
			resume_url,
			resume_updated_at,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		id,
		string(reg.Status),
		reg.EditingLocked,
		reg.Consents.AccuracyAgreement,
		reg.Consents.TermsAndConditions,
		reg.Consents.CodeOfConduct,
		reg.Consents.MLHCodeOfConduct,
		reg.Consents.MLHDataSharing,
		reg.Consents.CanPhotograph,
		reg.Consents.ShareResumeWithCompanies,
		reg.Consents.MLHCommunications,
		reg.ResumePath,
		utcPtr(reg.ResumeUpdatedAt),
		reg.CreatedAt.UTC(),
		reg.UpdatedAt.UTC(),
	)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return registrationrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id domain.AccountID) (domain.Registration, error) {
	if r.pool == nil {
		return domain.Registration{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Registration{}, registrationrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations r
		WHERE r.user_id = $1
	`, uid)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Registration{}, registrationrepo.ErrNotFound
		}
		return domain.Registration{}, err
	}
	return reg, nil
}

func (r *Repo) UpdateConsents(ctx context.Context, id domain.AccountID, c domain.ConsentFlags, at time.Time) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE registrations
		SET accuracy_agreement = $2,
		    terms_and_conditions = $3,
		    code_of_conduct = $4,
		    mlh_code_of_conduct = $5,
		    mlh_data_sharing = $6,
		    can_photograph = $7,
		    share_resume_with_companies = $8,
		    mlh_communications = $9,
		    updated_at = $10
		WHERE user_id = $1
	`,
		uid,
		c.AccuracyAgreement,
		c.TermsAndConditions,
		c.CodeOfConduct,
		c.MLHCodeOfConduct,
		c.MLHDataSharing,
		c.CanPhotograph,
		c.ShareResumeWithCompanies,
		c.MLHCommunications,
		at.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return registrationrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) SetResume(ctx context.Context, id domain.AccountID, path string, at time.Time) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE registrations
		SET resume_url = $2,
		    resume_updated_at = $3,
		    updated_at = $3
		WHERE user_id = $1
	`, uid, path, at.UTC())
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return registrationrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) SetStatusAll(ctx context.Context, ids []domain.AccountID, s domain.Status, at time.Time) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uids, err := parseIDs(ids)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE registrations
		SET status = $2, updated_at = $3
		WHERE user_id = ANY($1)
	`, uids, string(s), at.UTC())
	return err
}

func (r *Repo) SetLockAll(ctx context.Context, ids []domain.AccountID, locked bool, at time.Time) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uids, err := parseIDs(ids)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE registrations
		SET editing_locked = $2, updated_at = $3
		WHERE user_id = ANY($1)
	`, uids, locked, at.UTC())
	return err
}

func (r *Repo) DeleteAll(ctx context.Context, ids []domain.AccountID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uids, err := parseIDs(ids)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `DELETE FROM registrations WHERE user_id = ANY($1)`, uids)
	return err
}

func (r *Repo) List(ctx context.Context, f registrationrepo.Filter) ([]registrationrepo.Entry, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	query := `
		SELECT ` + registrationColumns + `, ` + joinedProfileColumns + `
		FROM registrations r
		LEFT JOIN profiles p ON p.id = r.user_id
		WHERE 1=1
	`
	args := []any{}
	if f.Status != "" {
		args = append(args, string(f.Status))
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if q := f.Query; q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.full_name ILIKE $%d OR p.email ILIKE $%d)", n, n)
	}
	query += " ORDER BY r.created_at DESC, r.user_id ASC"

	return r.queryEntries(ctx, query, args...)
}

func (r *Repo) ListSharedWithResume(ctx context.Context) ([]registrationrepo.Entry, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	return r.queryEntries(ctx, `
		SELECT `+registrationColumns+`, `+joinedProfileColumns+`
		FROM registrations r
		LEFT JOIN profiles p ON p.id = r.user_id
		WHERE r.share_resume_with_companies = true
		  AND r.resume_url IS NOT NULL
		ORDER BY r.created_at DESC, r.user_id ASC
	`)
}

func (r *Repo) queryEntries(ctx context.Context, query string, args ...any) ([]registrationrepo.Entry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]registrationrepo.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRegistration(row interface{ Scan(dest ...any) error }) (domain.Registration, error) {
	var (
		id              uuid.UUID
		status          string
		resumePath      *string
		resumeUpdatedAt *time.Time
		createdAt       time.Time
		updatedAt       time.Time
	)
	var reg domain.Registration
	if err := row.Scan(
		&id,
		&status,
		&reg.EditingLocked,
		&reg.Consents.AccuracyAgreement,
		&reg.Consents.TermsAndConditions,
		&reg.Consents.CodeOfConduct,
		&reg.Consents.MLHCodeOfConduct,
		&reg.Consents.MLHDataSharing,
		&reg.Consents.CanPhotograph,
		&reg.Consents.ShareResumeWithCompanies,
		&reg.Consents.MLHCommunications,
		&resumePath,
		&resumeUpdatedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return domain.Registration{}, err
	}
	reg.AccountID = domain.AccountID(id.String())
	reg.Status = domain.Status(status)
	reg.ResumePath = resumePath
	reg.ResumeUpdatedAt = utcPtr(resumeUpdatedAt)
	reg.CreatedAt = createdAt.UTC()
	reg.UpdatedAt = updatedAt.UTC()
	return reg, nil
}

// scanEntry reads registrationColumns followed by joinedProfileColumns.
func scanEntry(row interface{ Scan(dest ...any) error }) (registrationrepo.Entry, error) {
	var (
		e registrationrepo.Entry

		regID           uuid.UUID
		status          string
		resumePath      *string
		resumeUpdatedAt *time.Time
		regCreatedAt    time.Time
		regUpdatedAt    time.Time

		profID       uuid.UUID
		age          string
		major        string
		gradYear     string
		level        string
		skill        string
		hackathons   string
		tshirt       string
		gender       string
		dietary      []string
		race         []string
		profCreated  time.Time
		profUpdated  time.Time
	)
	if err := row.Scan(
		&regID,
		&status,
		&e.Registration.EditingLocked,
		&e.Registration.Consents.AccuracyAgreement,
		&e.Registration.Consents.TermsAndConditions,
		&e.Registration.Consents.CodeOfConduct,
		&e.Registration.Consents.MLHCodeOfConduct,
		&e.Registration.Consents.MLHDataSharing,
		&e.Registration.Consents.CanPhotograph,
		&e.Registration.Consents.ShareResumeWithCompanies,
		&e.Registration.Consents.MLHCommunications,
		&resumePath,
		&resumeUpdatedAt,
		&regCreatedAt,
		&regUpdatedAt,

		&profID,
		&e.Profile.FirstName,
		&e.Profile.LastName,
		&e.Profile.FullName,
		&e.Profile.Email,
		&e.Profile.PhoneNumber,
		&age,
		&e.Profile.LinkedInURL,
		&e.Profile.School,
		&major,
		&gradYear,
		&level,
		&skill,
		&hackathons,
		&e.Profile.AddressLine1,
		&e.Profile.AddressLine2,
		&e.Profile.City,
		&e.Profile.State,
		&e.Profile.ZipCode,
		&e.Profile.Country,
		&tshirt,
		&dietary,
		&e.Profile.Accessibility,
		&gender,
		&race,
		&profCreated,
		&profUpdated,
	); err != nil {
		return registrationrepo.Entry{}, err
	}

	e.Registration.AccountID = domain.AccountID(regID.String())
	e.Registration.Status = domain.Status(status)
	e.Registration.ResumePath = resumePath
	e.Registration.ResumeUpdatedAt = utcPtr(resumeUpdatedAt)
	e.Registration.CreatedAt = regCreatedAt.UTC()
	e.Registration.UpdatedAt = regUpdatedAt.UTC()

	e.Profile.AccountID = domain.AccountID(profID.String())
	e.Profile.Age = domain.AgeBracket(age)
	e.Profile.Major = domain.Major(major)
	e.Profile.GradYear = domain.GradYear(gradYear)
	e.Profile.LevelOfStudy = domain.LevelOfStudy(level)
	e.Profile.EngineeringSkill = domain.SkillLevel(skill)
	e.Profile.HackathonExperience = domain.HackathonCount(hackathons)
	e.Profile.TShirt = domain.TShirtSize(tshirt)
	e.Profile.Gender = domain.Gender(gender)
	e.Profile.Dietary = make([]domain.DietaryTag, 0, len(dietary))
	for _, d := range dietary {
		e.Profile.Dietary = append(e.Profile.Dietary, domain.DietaryTag(d))
	}
	e.Profile.Race = make([]domain.Race, 0, len(race))
	for _, rr := range race {
		e.Profile.Race = append(e.Profile.Race, domain.Race(rr))
	}
	e.Profile.CreatedAt = profCreated.UTC()
	e.Profile.UpdatedAt = profUpdated.UTC()

	return e, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func parseIDs(ids []domain.AccountID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		uid, err := uuid.Parse(string(id))
		if err != nil {
			return nil, fmt.Errorf("invalid account id %q: %w", id, err)
		}
		out = append(out, uid)
	}
	return out, nil
}
