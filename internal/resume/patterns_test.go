package resume

import "testing"

func TestSplitDate(t *testing.T) {
	tests := []struct {
		line     string
		duration string
		rest     string
		ok       bool
	}{
		{"Software Engineer Jan 2022 - Present", "Jan 2022 - Present", "Software Engineer", true},
		{"June 2021 – Aug 2021 internship", "June 2021 – Aug 2021", "internship", true},
		{"Graduated May 2023", "May 2023", "Graduated", true},
		{"Sep. 2020 - present", "Sep. 2020 - present", "", true},
		{"no dates at all", "", "no dates at all", false},
		{"year 2021 alone", "", "year 2021 alone", false},
	}
	for _, tt := range tests {
		duration, rest, ok := splitDate(tt.line)
		if duration != tt.duration || rest != tt.rest || ok != tt.ok {
			t.Errorf("splitDate(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, duration, rest, ok, tt.duration, tt.rest, tt.ok)
		}
	}
}

func TestSplitDate_JoinsAroundSpan(t *testing.T) {
	duration, rest, ok := splitDate("Intern Jun 2020 - Aug 2020 at Acme")
	if !ok {
		t.Fatal("expected a span")
	}
	if duration != "Jun 2020 - Aug 2020" {
		t.Errorf("duration = %q", duration)
	}
	if rest != "Intern at Acme" {
		t.Errorf("rest = %q", rest)
	}
}

func TestIsBullet(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"• item", true},
		{"● item", true},
		{"▪ item", true},
		{"‣ item", true},
		{"- item", true},
		{"* item", true},
		{"-not a bullet", false},
		{"*emphasis*", false},
		{"plain", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBullet(tt.line); got != tt.want {
			t.Errorf("IsBullet(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"•   spaced out", "spaced out"},
		{"- dashed", "dashed"},
		{"no marker", "no marker"},
	}
	for _, tt := range tests {
		if got := StripBullet(tt.line); got != tt.want {
			t.Errorf("StripBullet(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSplitPipeHeader(t *testing.T) {
	name, remainder, ok := splitPipeHeader("My Project | proj.dev Jan 2023")
	if !ok {
		t.Fatal("expected a header")
	}
	if name != "My Project" || remainder != "proj.dev Jan 2023" {
		t.Errorf("got (%q, %q)", name, remainder)
	}

	if _, _, ok := splitPipeHeader("no pipe Jan 2023"); ok {
		t.Error("line without a pipe should not be a header")
	}
	if _, _, ok := splitPipeHeader("pipe | but no date"); ok {
		t.Error("line without a date span should not be a header")
	}
}
