package domain

import "testing"

func TestNormalizeHumanName(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"  Alice   Smith ", "Alice Smith"},
		{"Bob", "Bob"},
		{"\tJane\n Doe", "Jane Doe"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeHumanName(tc.in); got != tc.want {
			t.Fatalf("NormalizeHumanName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	if got := FullName("Jane", "Doe"); got != "Jane Doe" {
		t.Fatalf("got %q", got)
	}
	// A missing component must not leave a stray space.
	if got := FullName("Jane", ""); got != "Jane" {
		t.Fatalf("got %q", got)
	}
	if got := FullName("", ""); got != "" {
		t.Fatalf("got %q", got)
	}
}
