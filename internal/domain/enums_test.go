package domain

import "testing"

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"age member", true, AgeBracket("25-34").Valid},
		{"age numeric but unlisted", false, AgeBracket("16").Valid},
		{"age empty", false, AgeBracket("").Valid},
		{"grad year member", true, GradYear("2027").Valid},
		{"grad year past", false, GradYear("2024").Valid},
		{"level of study member", true, LevelOfStudy("graduate").Valid},
		{"level of study free text", false, LevelOfStudy("PhD").Valid},
		{"skill member", true, SkillLevel("3").Valid},
		{"skill out of range", false, SkillLevel("6").Valid},
		{"hackathon count member", true, HackathonCount("5+").Valid},
		{"hackathon count unbucketed", false, HackathonCount("7").Valid},
		{"tshirt member", true, TShirtSize("2XL").Valid},
		{"tshirt lowercase", false, TShirtSize("m").Valid},
		{"dietary member", true, DietaryTag("gluten-free").Valid},
		{"dietary free text", false, DietaryTag("no shellfish").Valid},
		{"gender member", true, Gender("non-binary").Valid},
		{"gender unlisted", false, Gender("male").Valid},
		{"race member", true, Race("prefer-not-to-answer").Valid},
		{"race free text", false, Race("mixed").Valid},
		{"major member", true, Major("computer-science").Valid},
		{"major display form", false, Major("Computer Science").Valid},
		{"status member", true, Status("waitlist").Valid},
		{"status unlisted", false, Status("accepted").Valid},
		{"status empty", false, Status("").Valid},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.check(); got != tc.valid {
				t.Fatalf("Valid() = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestEnumOptionListsAreSelfConsistent(t *testing.T) {
	t.Parallel()

	for _, a := range AgeBrackets {
		if !a.Valid() {
			t.Fatalf("listed age bracket %q not valid", a)
		}
	}
	for _, s := range Statuses {
		if !s.Valid() {
			t.Fatalf("listed status %q not valid", s)
		}
	}
	for _, m := range Majors {
		if !m.Valid() {
			t.Fatalf("listed major %q not valid", m)
		}
	}
}
