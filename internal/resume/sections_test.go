package resume

import "testing"

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"SKILLS", true},
		{"skills", true},
		{"Work Experience", true},
		{"EXTRACURRICULARS", true},
		{"TECHNICAL SKILLS", false},
		{"SKILLS AND TOOLS", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSectionHeader(tt.line); got != tt.want {
			t.Errorf("IsSectionHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLocate_BetweenHeaders(t *testing.T) {
	lines := Lines("Jane Doe\n\nSKILLS\nLanguages: Go\n\nEDUCATION\nState University | Austin, TX Aug 2019 - May 2023")

	got := Locate(lines, HeaderSkills)
	want := []string{"Languages: Go", ""}
	if len(got) != len(want) {
		t.Fatalf("Locate(SKILLS) returned %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLocate_RunsToEndOfInput(t *testing.T) {
	lines := Lines("SKILLS\nLanguages: Go\nTools: Docker")
	got := Locate(lines, HeaderSkills)
	if len(got) != 2 {
		t.Fatalf("Locate(SKILLS) returned %d lines, want 2", len(got))
	}
}

func TestLocate_MissingHeader(t *testing.T) {
	lines := Lines("Jane Doe\nSKILLS\nLanguages: Go")
	if got := Locate(lines, HeaderProjects); got != nil {
		t.Errorf("Locate(PROJECTS) = %v, want nil", got)
	}
}

func TestLocate_CaseInsensitive(t *testing.T) {
	lines := Lines("Work Experience\nSoftware Engineer Jan 2022 - Present")
	got := Locate(lines, HeaderWorkExperience)
	if len(got) != 1 || got[0] != "Software Engineer Jan 2022 - Present" {
		t.Errorf("Locate with mixed-case header = %v", got)
	}
}

func TestLocate_KeywordInsideLineIsNotABoundary(t *testing.T) {
	lines := Lines("SKILLS\nLanguages: Go\nMentioned projects in passing\nTools: Docker")
	got := Locate(lines, HeaderSkills)
	if len(got) != 3 {
		t.Errorf("embedded keyword terminated the section early: got %d lines", len(got))
	}
}
