package httpapi

import (
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/app/admin"
	"github.com/uf-sase-hacks/registration-api/internal/app/registration"
	"github.com/uf-sase-hacks/registration-api/internal/domain"
)

// Wire DTOs. Field names follow the form the frontend submits and reads
// back, so the JSON tags are snake_case throughout.

type profileJSON struct {
	AccountID string `json:"account_id"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Age         string `json:"age"`
	LinkedInURL string `json:"linkedin_url"`

	School       string `json:"school"`
	Major        string `json:"major"`
	GradYear     string `json:"grad_year"`
	LevelOfStudy string `json:"level_of_study"`

	EngineeringSkill    string `json:"engineering_skill"`
	HackathonExperience string `json:"hackathon_experience"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`

	TShirt        string   `json:"tshirt"`
	Dietary       []string `json:"dietary"`
	Accessibility string   `json:"accessibility"`

	Gender string   `json:"gender"`
	Race   []string `json:"race"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type consentsJSON struct {
	AccuracyAgreement  bool `json:"accuracy_agreement"`
	TermsAndConditions bool `json:"terms_and_conditions"`
	CodeOfConduct      bool `json:"code_of_conduct"`
	MLHCodeOfConduct   bool `json:"mlh_code_of_conduct"`
	MLHDataSharing     bool `json:"mlh_data_sharing"`

	CanPhotograph            bool `json:"can_photograph"`
	ShareResumeWithCompanies bool `json:"share_resume_with_companies"`
	MLHCommunications        bool `json:"mlh_communications"`
}

type registrationJSON struct {
	AccountID string `json:"account_id"`

	Status        string       `json:"status"`
	EditingLocked bool         `json:"editing_locked"`
	Consents      consentsJSON `json:"consents"`

	HasResume       bool       `json:"has_resume"`
	ResumeUpdatedAt *time.Time `json:"resume_updated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type viewJSON struct {
	Profile      profileJSON      `json:"profile"`
	Registration registrationJSON `json:"registration"`
	State        string           `json:"state"`
}

func toProfileJSON(p domain.Profile) profileJSON {
	dietary := make([]string, 0, len(p.Dietary))
	for _, d := range p.Dietary {
		dietary = append(dietary, string(d))
	}
	race := make([]string, 0, len(p.Race))
	for _, r := range p.Race {
		race = append(race, string(r))
	}
	return profileJSON{
		AccountID:           string(p.AccountID),
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		FullName:            p.FullName,
		Email:               p.Email,
		PhoneNumber:         p.PhoneNumber,
		Age:                 string(p.Age),
		LinkedInURL:         p.LinkedInURL,
		School:              p.School,
		Major:               string(p.Major),
		GradYear:            string(p.GradYear),
		LevelOfStudy:        string(p.LevelOfStudy),
		EngineeringSkill:    string(p.EngineeringSkill),
		HackathonExperience: string(p.HackathonExperience),
		AddressLine1:        p.AddressLine1,
		AddressLine2:        p.AddressLine2,
		City:                p.City,
		State:               p.State,
		ZipCode:             p.ZipCode,
		Country:             p.Country,
		TShirt:              string(p.TShirt),
		Dietary:             dietary,
		Accessibility:       p.Accessibility,
		Gender:              string(p.Gender),
		Race:                race,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toRegistrationJSON(r domain.Registration) registrationJSON {
	return registrationJSON{
		AccountID:     string(r.AccountID),
		Status:        string(r.Status),
		EditingLocked: r.EditingLocked,
		Consents: consentsJSON{
			AccuracyAgreement:        r.Consents.AccuracyAgreement,
			TermsAndConditions:       r.Consents.TermsAndConditions,
			CodeOfConduct:            r.Consents.CodeOfConduct,
			MLHCodeOfConduct:         r.Consents.MLHCodeOfConduct,
			MLHDataSharing:           r.Consents.MLHDataSharing,
			CanPhotograph:            r.Consents.CanPhotograph,
			ShareResumeWithCompanies: r.Consents.ShareResumeWithCompanies,
			MLHCommunications:        r.Consents.MLHCommunications,
		},
		HasResume:       r.ResumePath != nil,
		ResumeUpdatedAt: r.ResumeUpdatedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toViewJSON(v registration.View) viewJSON {
	return viewJSON{
		Profile:      toProfileJSON(v.Profile),
		Registration: toRegistrationJSON(v.Registration),
		State:        string(v.State),
	}
}

func toDetailJSON(d admin.Detail) viewJSON {
	return viewJSON{
		Profile:      toProfileJSON(d.Entry.Profile),
		Registration: toRegistrationJSON(d.Entry.Registration),
		State:        string(d.State),
	}
}

// Request DTOs.

type profileInputJSON struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Age         string `json:"age"`
	LinkedInURL string `json:"linkedin_url"`

	School       string `json:"school"`
	Major        string `json:"major"`
	GradYear     string `json:"grad_year"`
	LevelOfStudy string `json:"level_of_study"`

	EngineeringSkill    string `json:"engineering_skill"`
	HackathonExperience string `json:"hackathon_experience"`

	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`

	TShirt        string   `json:"tshirt"`
	Dietary       []string `json:"dietary"`
	Accessibility string   `json:"accessibility"`

	Gender string   `json:"gender"`
	Race   []string `json:"race"`
}

func (in profileInputJSON) toInput() registration.ProfileInput {
	return registration.ProfileInput{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		PhoneNumber:         in.PhoneNumber,
		Age:                 in.Age,
		LinkedInURL:         in.LinkedInURL,
		School:              in.School,
		Major:               in.Major,
		GradYear:            in.GradYear,
		LevelOfStudy:        in.LevelOfStudy,
		EngineeringSkill:    in.EngineeringSkill,
		HackathonExperience: in.HackathonExperience,
		AddressLine1:        in.AddressLine1,
		AddressLine2:        in.AddressLine2,
		City:                in.City,
		State:               in.State,
		ZipCode:             in.ZipCode,
		Country:             in.Country,
		TShirt:              in.TShirt,
		Dietary:             in.Dietary,
		Accessibility:       in.Accessibility,
		Gender:              in.Gender,
		Race:                in.Race,
	}
}

type consentInputJSON struct {
	AccuracyAgreement  bool `json:"accuracy_agreement"`
	TermsAndConditions bool `json:"terms_and_conditions"`
	CodeOfConduct      bool `json:"code_of_conduct"`
	MLHCodeOfConduct   bool `json:"mlh_code_of_conduct"`
	MLHDataSharing     bool `json:"mlh_data_sharing"`

	CanPhotograph            bool `json:"can_photograph"`
	ShareResumeWithCompanies bool `json:"share_resume_with_companies"`
	MLHCommunications        bool `json:"mlh_communications"`
}

func (in consentInputJSON) toInput() registration.ConsentInput {
	return registration.ConsentInput{
		AccuracyAgreement:        in.AccuracyAgreement,
		TermsAndConditions:       in.TermsAndConditions,
		CodeOfConduct:            in.CodeOfConduct,
		MLHCodeOfConduct:         in.MLHCodeOfConduct,
		MLHDataSharing:           in.MLHDataSharing,
		CanPhotograph:            in.CanPhotograph,
		ShareResumeWithCompanies: in.ShareResumeWithCompanies,
		MLHCommunications:        in.MLHCommunications,
	}
}
