package domain

import "time"

// Profile is the biographical/demographic record for one participant,
// keyed by the account id issued by the identity provider.
//
// Enum-typed fields left at their zero value are "unset"; multi-selects are
// never nil after validation (empty slice means none selected).
type Profile struct {
	AccountID AccountID

	FirstName string
	LastName  string
	// FullName is derived from FirstName + LastName on every write,
	// never supplied by a caller.
	FullName    string
	Email       string
	PhoneNumber string
	Age         AgeBracket
	LinkedInURL string

	School       string
	Major        Major // optional
	GradYear     GradYear
	LevelOfStudy LevelOfStudy

	EngineeringSkill    SkillLevel
	HackathonExperience HackathonCount

	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Country      string

	TShirt        TShirtSize // optional
	Dietary       []DietaryTag
	Accessibility string

	Gender Gender // optional
	Race   []Race

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MandatoryFieldsComplete reports whether the fields required for onboarding
// completion are all set: email, phone, age, school, country, LinkedIn URL.
// Demographic and logistics fields never count.
func (p Profile) MandatoryFieldsComplete() bool {
	return p.Email != "" &&
		p.PhoneNumber != "" &&
		p.Age != "" &&
		p.School != "" &&
		p.Country != "" &&
		p.LinkedInURL != ""
}

// Clone returns a deep copy (the slice fields are the only shared state).
func (p Profile) Clone() Profile {
	out := p
	if p.Dietary != nil {
		out.Dietary = append([]DietaryTag(nil), p.Dietary...)
	}
	if p.Race != nil {
		out.Race = append([]Race(nil), p.Race...)
	}
	return out
}
