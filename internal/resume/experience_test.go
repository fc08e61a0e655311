package resume

import (
	"reflect"
	"testing"
)

func TestExperienceParser_SingleEntry(t *testing.T) {
	lines := []string{
		"Software Engineer Jan 2022 - Present",
		"TechCorp, Remote",
		"• Built data pipelines in Go",
		"• Cut p99 latency by 40%",
	}
	entries := ExperienceParser{}.Parse(lines)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Title != "Software Engineer" {
		t.Errorf("Title = %q", e.Title)
	}
	if e.Duration != "Jan 2022 - Present" {
		t.Errorf("Duration = %q", e.Duration)
	}
	if e.Company != "TechCorp" {
		t.Errorf("Company = %q", e.Company)
	}
	if e.Location != "Remote" {
		t.Errorf("Location = %q", e.Location)
	}
	want := []string{"Built data pipelines in Go", "Cut p99 latency by 40%"}
	if !reflect.DeepEqual(e.Description, want) {
		t.Errorf("Description = %v, want %v", e.Description, want)
	}
}

func TestExperienceParser_ConsecutiveDateLinesNeverMerge(t *testing.T) {
	lines := []string{
		"Backend Engineer Jun 2023 - Present",
		"Intern May 2022 - Aug 2022",
	}
	entries := ExperienceParser{}.Parse(lines)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Title != "Backend Engineer" || entries[1].Title != "Intern" {
		t.Errorf("titles = %q, %q", entries[0].Title, entries[1].Title)
	}
}

func TestExperienceParser_BlankLinesDoNotConsumeAffiliation(t *testing.T) {
	lines := []string{
		"Software Engineer Jan 2022 - Present",
		"",
		"TechCorp, Full-time",
		"• Shipped things",
	}
	entries := ExperienceParser{}.Parse(lines)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Company != "TechCorp" {
		t.Errorf("Company = %q, blank line consumed the affiliation slot", entries[0].Company)
	}
	if entries[0].Location != "Full-time" {
		t.Errorf("Location = %q", entries[0].Location)
	}
}

func TestExperienceParser_AffiliationWithoutKeyword(t *testing.T) {
	lines := []string{
		"Data Engineer Mar 2021 - Feb 2022",
		"Acme Analytics",
	}
	entries := ExperienceParser{}.Parse(lines)
	if entries[0].Company != "Acme Analytics" {
		t.Errorf("Company = %q", entries[0].Company)
	}
	if entries[0].Location != "" {
		t.Errorf("Location = %q, want empty", entries[0].Location)
	}
}

func TestExperienceParser_BulletBeforeAffiliationClosesSlot(t *testing.T) {
	lines := []string{
		"Consultant Apr 2020 - Dec 2020",
		"• Advised clients",
		"Some Company, Remote",
	}
	entries := ExperienceParser{}.Parse(lines)
	if entries[0].Company != "" {
		t.Errorf("Company = %q, affiliation slot should be closed after a bullet", entries[0].Company)
	}
	if len(entries[0].Description) != 1 {
		t.Errorf("Description = %v", entries[0].Description)
	}
}

func TestExperienceParser_OrphanBulletsDropped(t *testing.T) {
	lines := []string{
		"• A bullet before any entry",
		"Engineer Sep 2019 - May 2020",
		"• Real bullet",
	}
	entries := ExperienceParser{}.Parse(lines)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !reflect.DeepEqual(entries[0].Description, []string{"Real bullet"}) {
		t.Errorf("Description = %v", entries[0].Description)
	}
}

func TestExperienceParser_EmptyDescriptionIsEmptySlice(t *testing.T) {
	entries := ExperienceParser{}.Parse([]string{"Engineer Jan 2020 - Feb 2020"})
	if entries[0].Description == nil {
		t.Error("Description is nil, want empty slice")
	}
	if len(entries[0].Description) != 0 {
		t.Errorf("Description = %v", entries[0].Description)
	}
}

func TestExperienceParser_NoEntries(t *testing.T) {
	entries := ExperienceParser{}.Parse([]string{"just prose", ""})
	if entries == nil {
		t.Fatal("got nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestSplitAffiliation(t *testing.T) {
	tests := []struct {
		line     string
		company  string
		location string
	}{
		{"TechCorp, Remote", "TechCorp", "Remote"},
		{"Acme Inc, Part-time", "Acme Inc", "Part-time"},
		{"Solo Gig, Consultant/Freelance", "Solo Gig", "Consultant/Freelance"},
		{"Plain Company Name", "Plain Company Name", ""},
	}
	for _, tt := range tests {
		company, location := splitAffiliation(tt.line)
		if company != tt.company || location != tt.location {
			t.Errorf("splitAffiliation(%q) = (%q, %q), want (%q, %q)",
				tt.line, company, location, tt.company, tt.location)
		}
	}
}
