package domain

// Fixed enumerations for profile fields. Unknown values are rejected by the
// validator, never coerced; the option lists are also served to the front end
// so the form and the validator cannot drift apart.

type AgeBracket string

var AgeBrackets = []AgeBracket{
	"17", "18", "19", "20", "21", "22", "23", "24", "25-34", "35-44", "45+",
}

func (a AgeBracket) Valid() bool { return member(AgeBrackets, a) }

type GradYear string

var GradYears = []GradYear{"2025", "2026", "2027", "2028", "2029", "2030"}

func (g GradYear) Valid() bool { return member(GradYears, g) }

type LevelOfStudy string

var LevelsOfStudy = []LevelOfStudy{
	"less-than-secondary",
	"secondary",
	"undergraduate-2-year",
	"undergraduate-3-plus-year",
	"graduate",
	"code-school-bootcamp",
	"other-vocational-or-trade-program",
	"post-doctorate",
	"other",
	"not-currently-a-student",
	"prefer-not-to-answer",
}

func (l LevelOfStudy) Valid() bool { return member(LevelsOfStudy, l) }

// SkillLevel is a self-rated engineering skill from 1 to 5.
type SkillLevel string

var SkillLevels = []SkillLevel{"1", "2", "3", "4", "5"}

func (s SkillLevel) Valid() bool { return member(SkillLevels, s) }

// HackathonCount is a bucketed count of prior hackathons attended.
type HackathonCount string

var HackathonCounts = []HackathonCount{"0", "1", "2", "3", "4", "5+"}

func (h HackathonCount) Valid() bool { return member(HackathonCounts, h) }

type TShirtSize string

var TShirtSizes = []TShirtSize{"XS", "S", "M", "L", "XL", "2XL", "3XL"}

func (t TShirtSize) Valid() bool { return member(TShirtSizes, t) }

type DietaryTag string

var DietaryTags = []DietaryTag{
	"vegan",
	"vegetarian",
	"halal",
	"kosher",
	"nut-free",
	"gluten-free",
	"dairy-free",
	"celiac",
	"allergies",
	"none",
}

func (d DietaryTag) Valid() bool { return member(DietaryTags, d) }

type Gender string

var Genders = []Gender{"man", "woman", "non-binary", "other", "prefer-not-to-say"}

func (g Gender) Valid() bool { return member(Genders, g) }

type Race string

var Races = []Race{
	"asian-indian",
	"black-or-african",
	"chinese",
	"filipino",
	"guamanian-or-chamorro",
	"hispanic-latino-spanish-origin",
	"japanese",
	"korean",
	"middle-eastern",
	"native-american-or-alaskan-native",
	"native-hawaiian",
	"samoan",
	"vietnamese",
	"white",
	"other-asian",
	"other-pacific-islander",
	"other",
	"prefer-not-to-answer",
}

func (r Race) Valid() bool { return member(Races, r) }

type Major string

var Majors = []Major{
	"computer-science",
	"computer-engineering",
	"software-engineering",
	"information-technology",
	"information-systems",
	"data-science",
	"cybersecurity",
	"electrical-engineering",
	"mechanical-engineering",
	"civil-engineering",
	"chemical-engineering",
	"biomedical-engineering",
	"industrial-engineering",
	"aerospace-engineering",
	"mathematics",
	"statistics",
	"physics",
	"biology",
	"chemistry",
	"business",
	"economics",
	"finance",
	"marketing",
	"psychology",
	"design",
	"undeclared",
	"other",
}

func (m Major) Valid() bool { return member(Majors, m) }

// Status is the administrator-controlled review status of a registration.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusWaitlist  Status = "waitlist"
	StatusRejected  Status = "rejected"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusWaitlist, StatusRejected}

func (s Status) Valid() bool { return member(Statuses, s) }

func member[T comparable](opts []T, v T) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
