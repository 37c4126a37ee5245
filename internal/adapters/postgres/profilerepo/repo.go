package profilerepo

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
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/profilerepo"
)

// Repo is a Postgres implementation of profilerepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `
	id,
	first_name,
	last_name,
	full_name,
	email,
	phone_number,
	age,
	linkedin_url,
	school,
	major,
	grad_year,
	level_of_study,
	engineering_skill,
	hackathon_experience,
	address_line1,
	address_line2,
	city,
	state,
	zip_code,
	country,
	tshirt,
	dietary,
	accessibility,
	gender,
	race,
	created_at,
	updated_at
`

func (r *Repo) Create(ctx context.Context, p domain.Profile) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(p.AccountID))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	`, profileArgs(id, p)...)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return profilerepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, p domain.Profile) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(p.AccountID))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET first_name = $2,
		    last_name = $3,
		    full_name = $4,
		    email = $5,
		    phone_number = $6,
		    age = $7,
		    linkedin_url = $8,
		    school = $9,
		    major = $10,
		    grad_year = $11,
		    level_of_study = $12,
		    engineering_skill = $13,
		    hackathon_experience = $14,
		    address_line1 = $15,
		    address_line2 = $16,
		    city = $17,
		    state = $18,
		    zip_code = $19,
		    country = $20,
		    tshirt = $21,
		    dietary = $22,
		    accessibility = $23,
		    gender = $24,
		    race = $25,
		    created_at = $26,
		    updated_at = $27
		WHERE id = $1
	`, profileArgs(id, p)...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return profilerepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id domain.AccountID) (domain.Profile, error) {
	if r.pool == nil {
		return domain.Profile{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Profile{}, profilerepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1
	`, uid)
	p, err := ScanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, profilerepo.ErrNotFound
		}
		return domain.Profile{}, err
	}
	return p, nil
}

func (r *Repo) DeleteAll(ctx context.Context, ids []domain.AccountID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uids, err := parseIDs(ids)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = ANY($1)`, uids)
	return err
}

func profileArgs(id uuid.UUID, p domain.Profile) []any {
	return []any{
		id,
		p.FirstName,
		p.LastName,
		p.FullName,
		p.Email,
		p.PhoneNumber,
		string(p.Age),
		p.LinkedInURL,
		p.School,
		string(p.Major),
		string(p.GradYear),
		string(p.LevelOfStudy),
		string(p.EngineeringSkill),
		string(p.HackathonExperience),
		p.AddressLine1,
		p.AddressLine2,
		p.City,
		p.State,
		p.ZipCode,
		p.Country,
		string(p.TShirt),
		dietaryStrings(p.Dietary),
		p.Accessibility,
		string(p.Gender),
		raceStrings(p.Race),
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	}
}

// ScanProfile reads one profiles row in profileColumns order. Shared with the
// registration repo's join listing.
func ScanProfile(row interface{ Scan(dest ...any) error }) (domain.Profile, error) {
	var (
		id        uuid.UUID
		dietary   []string
		race      []string
		createdAt time.Time
		updatedAt time.Time
	)
	var p domain.Profile
	var age, major, gradYear, level, skill, hackathons, tshirt, gender string
	if err := row.Scan(
		&id,
		&p.FirstName,
		&p.LastName,
		&p.FullName,
		&p.Email,
		&p.PhoneNumber,
		&age,
		&p.LinkedInURL,
		&p.School,
		&major,
		&gradYear,
		&level,
		&skill,
		&hackathons,
		&p.AddressLine1,
		&p.AddressLine2,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.Country,
		&tshirt,
		&dietary,
		&p.Accessibility,
		&gender,
		&race,
		&createdAt,
		&updatedAt,
	); err != nil {
		return domain.Profile{}, err
	}
	p.AccountID = domain.AccountID(id.String())
	p.Age = domain.AgeBracket(age)
	p.Major = domain.Major(major)
	p.GradYear = domain.GradYear(gradYear)
	p.LevelOfStudy = domain.LevelOfStudy(level)
	p.EngineeringSkill = domain.SkillLevel(skill)
	p.HackathonExperience = domain.HackathonCount(hackathons)
	p.TShirt = domain.TShirtSize(tshirt)
	p.Gender = domain.Gender(gender)
	p.Dietary = make([]domain.DietaryTag, 0, len(dietary))
	for _, d := range dietary {
		p.Dietary = append(p.Dietary, domain.DietaryTag(d))
	}
	p.Race = make([]domain.Race, 0, len(race))
	for _, r := range race {
		p.Race = append(p.Race, domain.Race(r))
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}

func dietaryStrings(ds []domain.DietaryTag) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, string(d))
	}
	return out
}

func raceStrings(rs []domain.Race) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}
	return out
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
