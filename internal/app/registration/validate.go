package registration

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// FieldErrors maps form field names to human-readable messages. Validation
// collects every failure in one pass so a caller can display all problems at
// once.
type FieldErrors map[string]any

func (fe FieldErrors) add(field, msg string) { fe[field] = msg }

// ValidateProfile checks and normalizes a candidate profile field set.
// On success it returns a Profile carrying only field data (identity and
// timestamps are the caller's concern) and an empty FieldErrors.
func ValidateProfile(in ProfileInput) (domain.Profile, FieldErrors) {
	fe := FieldErrors{}
	var p domain.Profile

	p.FirstName = domain.NormalizeHumanName(in.FirstName)
	if p.FirstName == "" {
		fe.add("first_name", "Please enter your first name")
	}
	p.LastName = domain.NormalizeHumanName(in.LastName)
	if p.LastName == "" {
		fe.add("last_name", "Please enter your last name")
	}
	p.FullName = domain.FullName(p.FirstName, p.LastName)

	p.Email = strings.TrimSpace(in.Email)
	if !validEmail(p.Email) {
		fe.add("email", "Please enter a valid email address")
	}

	p.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	if len([]rune(p.PhoneNumber)) < 10 {
		fe.add("phone_number", "Please enter a valid phone number")
	}

	p.Age = domain.AgeBracket(in.Age)
	if !p.Age.Valid() {
		fe.add("age", "Please select your age")
	}

	p.School = strings.TrimSpace(in.School)
	if len([]rune(p.School)) < 2 {
		fe.add("school", "Please enter your school")
	}

	// Major is optional; empty means undeclared on the form.
	if in.Major != "" {
		p.Major = domain.Major(in.Major)
		if !p.Major.Valid() {
			fe.add("major", "Please select a valid major")
		}
	}

	p.GradYear = domain.GradYear(in.GradYear)
	if !p.GradYear.Valid() {
		fe.add("grad_year", "Please select your graduation year")
	}

	p.LevelOfStudy = domain.LevelOfStudy(in.LevelOfStudy)
	if !p.LevelOfStudy.Valid() {
		fe.add("level_of_study", "Please select your level of study")
	}

	p.EngineeringSkill = domain.SkillLevel(in.EngineeringSkill)
	if !p.EngineeringSkill.Valid() {
		fe.add("engineering_skill", "Please rate your engineering skill")
	}

	p.HackathonExperience = domain.HackathonCount(in.HackathonExperience)
	if !p.HackathonExperience.Valid() {
		fe.add("hackathon_experience", "Please select your hackathon experience")
	}

	// Address fields are all optional; absence never fails validation.
	p.AddressLine1 = strings.TrimSpace(in.AddressLine1)
	p.AddressLine2 = strings.TrimSpace(in.AddressLine2)
	p.City = strings.TrimSpace(in.City)
	p.State = strings.TrimSpace(in.State)
	p.ZipCode = strings.TrimSpace(in.ZipCode)

	p.Country = strings.TrimSpace(in.Country)
	if len([]rune(p.Country)) < 2 {
		fe.add("country", "Please enter your country")
	}

	p.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	if !validURL(p.LinkedInURL) {
		fe.add("linkedin_url", "Please enter a valid LinkedIn URL")
	}

	if in.TShirt != "" {
		p.TShirt = domain.TShirtSize(in.TShirt)
		if !p.TShirt.Valid() {
			fe.add("tshirt", "Please select a valid t-shirt size")
		}
	}

	// Multi-selects: an absent field is an empty set, not an error.
	p.Dietary = make([]domain.DietaryTag, 0, len(in.Dietary))
	for _, d := range in.Dietary {
		tag := domain.DietaryTag(d)
		if !tag.Valid() {
			fe.add("dietary", "Please select valid dietary restrictions")
			continue
		}
		p.Dietary = append(p.Dietary, tag)
	}

	p.Accessibility = strings.TrimSpace(in.Accessibility)

	if in.Gender != "" {
		p.Gender = domain.Gender(in.Gender)
		if !p.Gender.Valid() {
			fe.add("gender", "Please select a valid gender")
		}
	}

	p.Race = make([]domain.Race, 0, len(in.Race))
	for _, r := range in.Race {
		race := domain.Race(r)
		if !race.Valid() {
			fe.add("race", "Please select valid race/ethnicity options")
			continue
		}
		p.Race = append(p.Race, race)
	}

	return p, fe
}

// ValidateConsents checks that every required consent flag is set. Optional
// flags are accepted regardless of value.
func ValidateConsents(in ConsentInput) FieldErrors {
	fe := FieldErrors{}
	if !in.AccuracyAgreement {
		fe.add("accuracy_agreement", "You must agree to the accuracy statement")
	}
	if !in.TermsAndConditions {
		fe.add("terms_and_conditions", "You must agree to the terms and conditions")
	}
	if !in.CodeOfConduct {
		fe.add("code_of_conduct", "You must agree to the code of conduct")
	}
	if !in.MLHCodeOfConduct {
		fe.add("mlh_code_of_conduct", "You must agree to the MLH Code of Conduct")
	}
	if !in.MLHDataSharing {
		fe.add("mlh_data_sharing", "You must agree to share your data with MLH")
	}
	return fe
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// Reject the "Name <email@x>" form; only a bare address is a valid value.
	return err == nil && addr.Address == s
}

func validURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
