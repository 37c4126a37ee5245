package registration

import (
	"testing"

	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		FirstName:           "Jane",
		LastName:            "Doe",
		Email:               "jane@example.com",
		PhoneNumber:         "3525550100",
		Age:                 "21",
		School:              "University of Florida",
		Major:               "computer-science",
		GradYear:            "2026",
		LevelOfStudy:        "undergraduate-3-plus-year",
		EngineeringSkill:    "3",
		HackathonExperience: "2",
		Country:             "United States",
		LinkedInURL:         "https://linkedin.com/in/janedoe",
	}
}

func grantedConsentInput() ConsentInput {
	return ConsentInput{
		AccuracyAgreement:  true,
		TermsAndConditions: true,
		CodeOfConduct:      true,
		MLHCodeOfConduct:   true,
		MLHDataSharing:     true,
	}
}

func TestValidateProfile_Valid(t *testing.T) {
	t.Parallel()

	p, fe := ValidateProfile(validProfileInput())
	if len(fe) != 0 {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if p.FullName != "Jane Doe" {
		t.Fatalf("full name = %q", p.FullName)
	}
	if p.Dietary == nil || p.Race == nil {
		t.Fatalf("multi-selects must be empty slices, not nil")
	}
}

func TestValidateProfile_NormalizesNames(t *testing.T) {
	t.Parallel()

	in := validProfileInput()
	in.FirstName = "  Jane \t"
	in.LastName = " van  der  Berg "
	p, fe := ValidateProfile(in)
	if len(fe) != 0 {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if p.FirstName != "Jane" || p.LastName != "van der Berg" {
		t.Fatalf("names not normalized: %q %q", p.FirstName, p.LastName)
	}
	if p.FullName != "Jane van der Berg" {
		t.Fatalf("full name = %q", p.FullName)
	}
}

func TestValidateProfile_CollectsEveryFailure(t *testing.T) {
	t.Parallel()

	_, fe := ValidateProfile(ProfileInput{})
	want := []string{
		"first_name", "last_name", "email", "phone_number", "age", "school",
		"grad_year", "level_of_study", "engineering_skill",
		"hackathon_experience", "country", "linkedin_url",
	}
	for _, field := range want {
		if _, ok := fe[field]; !ok {
			t.Errorf("missing field error for %q", field)
		}
	}
	// Optional fields must not fail when absent.
	for _, field := range []string{"major", "tshirt", "gender", "dietary", "race", "accessibility"} {
		if _, ok := fe[field]; ok {
			t.Errorf("unexpected field error for optional %q", field)
		}
	}
}

func TestValidateProfile_FieldCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		mut   func(*ProfileInput)
		field string
	}{
		{"whitespace-only first name", func(in *ProfileInput) { in.FirstName = "   " }, "first_name"},
		{"display-name email form", func(in *ProfileInput) { in.Email = "Jane <jane@example.com>" }, "email"},
		{"email missing domain", func(in *ProfileInput) { in.Email = "jane@" }, "email"},
		{"short phone", func(in *ProfileInput) { in.PhoneNumber = "555-0100" }, "phone_number"},
		{"unlisted age", func(in *ProfileInput) { in.Age = "16" }, "age"},
		{"one-char school", func(in *ProfileInput) { in.School = "U" }, "school"},
		{"unlisted major", func(in *ProfileInput) { in.Major = "underwater-basket-weaving" }, "major"},
		{"unlisted grad year", func(in *ProfileInput) { in.GradYear = "2031" }, "grad_year"},
		{"free-text level of study", func(in *ProfileInput) { in.LevelOfStudy = "PhD" }, "level_of_study"},
		{"skill out of range", func(in *ProfileInput) { in.EngineeringSkill = "0" }, "engineering_skill"},
		{"unbucketed hackathon count", func(in *ProfileInput) { in.HackathonExperience = "12" }, "hackathon_experience"},
		{"one-char country", func(in *ProfileInput) { in.Country = "U" }, "country"},
		{"relative url", func(in *ProfileInput) { in.LinkedInURL = "/in/janedoe" }, "linkedin_url"},
		{"schemeless url", func(in *ProfileInput) { in.LinkedInURL = "linkedin.com/in/janedoe" }, "linkedin_url"},
		{"unlisted tshirt", func(in *ProfileInput) { in.TShirt = "XXXL" }, "tshirt"},
		{"unlisted dietary tag", func(in *ProfileInput) { in.Dietary = []string{"vegan", "no shellfish"} }, "dietary"},
		{"unlisted gender", func(in *ProfileInput) { in.Gender = "male" }, "gender"},
		{"unlisted race", func(in *ProfileInput) { in.Race = []string{"mixed"} }, "race"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := validProfileInput()
			tc.mut(&in)
			_, fe := ValidateProfile(in)
			if _, ok := fe[tc.field]; !ok {
				t.Fatalf("expected field error for %q, got %v", tc.field, fe)
			}
			if len(fe) != 1 {
				t.Fatalf("expected exactly one field error, got %v", fe)
			}
		})
	}
}

func TestValidateProfile_OptionalMultiSelects(t *testing.T) {
	t.Parallel()

	in := validProfileInput()
	in.Dietary = []string{"vegan", "nut-free"}
	in.Race = []string{"chinese", "white"}
	in.TShirt = "M"
	in.Gender = "woman"
	p, fe := ValidateProfile(in)
	if len(fe) != 0 {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if len(p.Dietary) != 2 || p.Dietary[0] != domain.DietaryTag("vegan") {
		t.Fatalf("dietary = %v", p.Dietary)
	}
	if len(p.Race) != 2 {
		t.Fatalf("race = %v", p.Race)
	}
}

func TestValidateConsents(t *testing.T) {
	t.Parallel()

	if fe := ValidateConsents(grantedConsentInput()); len(fe) != 0 {
		t.Fatalf("unexpected field errors: %v", fe)
	}

	fe := ValidateConsents(ConsentInput{})
	want := []string{
		"accuracy_agreement", "terms_and_conditions", "code_of_conduct",
		"mlh_code_of_conduct", "mlh_data_sharing",
	}
	if len(fe) != len(want) {
		t.Fatalf("got %d field errors, want %d: %v", len(fe), len(want), fe)
	}
	for _, field := range want {
		if _, ok := fe[field]; !ok {
			t.Errorf("missing field error for %q", field)
		}
	}

	// Optional flags are never required.
	in := grantedConsentInput()
	in.CanPhotograph = false
	in.ShareResumeWithCompanies = false
	in.MLHCommunications = false
	if fe := ValidateConsents(in); len(fe) != 0 {
		t.Fatalf("optional flags must not be required: %v", fe)
	}
}
