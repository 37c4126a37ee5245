package registration

import "github.com/uf-sase-hacks/registration-api/internal/domain"

// ProfileInput is the untyped form submission as received at the boundary.
// Every field arrives as a string (or string slice for multi-selects) and is
// validated into typed domain values before anything is stored; unknown enum
// values are rejected, not coerced.
type ProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Age         string

	School       string
	Major        string
	GradYear     string
	LevelOfStudy string

	EngineeringSkill    string
	HackathonExperience string

	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Country      string

	LinkedInURL string

	TShirt        string
	Dietary       []string
	Accessibility string

	Gender string
	Race   []string
}

// ConsentInput is the consent checkbox submission.
type ConsentInput struct {
	AccuracyAgreement  bool
	TermsAndConditions bool
	CodeOfConduct      bool
	MLHCodeOfConduct   bool
	MLHDataSharing     bool

	CanPhotograph            bool
	ShareResumeWithCompanies bool
	MLHCommunications        bool
}

// Flags converts the input to the stored representation.
func (in ConsentInput) Flags() domain.ConsentFlags {
	return domain.ConsentFlags{
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

// View is a registration as read back by its owner, with the lifecycle state
// recomputed from current row contents.
type View struct {
	Profile      domain.Profile
	Registration domain.Registration
	State        domain.State
}
