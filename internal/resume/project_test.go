package resume

import (
	"reflect"
	"testing"
)

func TestProjectParser_SingleEntry(t *testing.T) {
	lines := []string{
		"Resume Builder | github.com/janedoe/builder Jun 2023 - Aug 2023",
		"• CLI that renders resumes from YAML",
		"• 1.2k stars",
	}
	entries := ProjectParser{}.Parse(lines)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	p := entries[0]
	if p.Name != "Resume Builder" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.URL != "github.com/janedoe/builder" {
		t.Errorf("URL = %q", p.URL)
	}
	if p.Duration != "Jun 2023 - Aug 2023" {
		t.Errorf("Duration = %q", p.Duration)
	}
	want := []string{"CLI that renders resumes from YAML", "1.2k stars"}
	if !reflect.DeepEqual(p.Description, want) {
		t.Errorf("Description = %v, want %v", p.Description, want)
	}
}

func TestProjectParser_MultipleEntries(t *testing.T) {
	lines := []string{
		"Alpha | alpha.dev Jan 2022 - Mar 2022",
		"• First",
		"Beta | beta.dev Apr 2022 - May 2022",
		"• Second",
	}
	entries := ProjectParser{}.Parse(lines)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Alpha" || entries[1].Name != "Beta" {
		t.Errorf("names = %q, %q", entries[0].Name, entries[1].Name)
	}
	if len(entries[0].Description) != 1 {
		t.Errorf("first entry absorbed later bullets: %v", entries[0].Description)
	}
}

func TestProjectParser_PipeWithoutDateIsNotAHeader(t *testing.T) {
	lines := []string{
		"Operators | pipes | everywhere",
		"Gamma | gamma.dev Sep 2021",
		"• Only real entry",
	}
	entries := ProjectParser{}.Parse(lines)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name != "Gamma" {
		t.Errorf("Name = %q", entries[0].Name)
	}
}

func TestProjectParser_HeaderWithoutURL(t *testing.T) {
	entries := ProjectParser{}.Parse([]string{"Delta | Oct 2020 - Nov 2020"})
	if entries[0].URL != "" {
		t.Errorf("URL = %q, want empty", entries[0].URL)
	}
	if entries[0].Duration != "Oct 2020 - Nov 2020" {
		t.Errorf("Duration = %q", entries[0].Duration)
	}
}

func TestProjectParser_NonBulletLinesIgnored(t *testing.T) {
	lines := []string{
		"Epsilon | eps.dev Dec 2019",
		"written in Go",
		"• Kept",
	}
	entries := ProjectParser{}.Parse(lines)
	if !reflect.DeepEqual(entries[0].Description, []string{"Kept"}) {
		t.Errorf("Description = %v", entries[0].Description)
	}
}
