package resume

import "strings"

// employmentKeywords split an affiliation line into company and location.
// Order matters: the first keyword found in the line wins.
var employmentKeywords = []string{
	"Remote",
	"Full-time",
	"Part-time",
	"Contract",
	"Consultant/Freelance",
}

// expState names the states of the experience machine.
type expState int

const (
	expAwaitingEntry expState = iota
	expInEntry
)

// ExperienceParser recovers job entries from the WORK EXPERIENCE section.
// A line carrying a date span opens a new entry (title = line minus span,
// duration = span); the next non-bullet line is the affiliation line; bullet
// lines accumulate into the open entry's description. A date line always
// closes the open entry before opening the next; entries never merge.
type ExperienceParser struct{}

// Parse runs the two-state machine over the section lines.
func (ExperienceParser) Parse(lines []string) []WorkExperience {
	var m expMachine
	entries := []WorkExperience{}
	for _, line := range lines {
		if e := m.step(line); e != nil {
			entries = append(entries, *e)
		}
	}
	if e := m.finish(); e != nil {
		entries = append(entries, *e)
	}
	return entries
}

// expMachine holds the single open entry and the look-ahead flag for the
// affiliation line.
type expMachine struct {
	state           expState
	open            WorkExperience
	wantAffiliation bool
}

// step advances the machine by one line and returns the entry the line
// closed, if any. Blank lines carry no state: PDF extraction scatters them
// and they must not consume the affiliation slot.
func (m *expMachine) step(line string) *WorkExperience {
	if line == "" {
		return nil
	}

	if duration, rest, ok := splitDate(line); ok && !IsBullet(line) {
		closed := m.finish()
		m.open = WorkExperience{
			Title:       rest,
			Duration:    duration,
			Description: []string{},
		}
		m.state = expInEntry
		m.wantAffiliation = true
		return closed
	}

	if m.state != expInEntry {
		return nil
	}

	if IsBullet(line) {
		m.open.Description = append(m.open.Description, StripBullet(line))
		m.wantAffiliation = false
		return nil
	}

	if m.wantAffiliation {
		m.open.Company, m.open.Location = splitAffiliation(line)
		m.wantAffiliation = false
	}
	// other lines inside an entry are noise
	return nil
}

// finish closes the open entry at end of input, if one is open.
func (m *expMachine) finish() *WorkExperience {
	if m.state != expInEntry {
		return nil
	}
	closed := m.open
	m.state = expAwaitingEntry
	m.open = WorkExperience{}
	return &closed
}

// splitAffiliation parses the line following an entry header. Text before
// the first employment-type keyword becomes the company and the keyword
// becomes the location; without a keyword the whole line is the company.
func splitAffiliation(line string) (company, location string) {
	for _, kw := range employmentKeywords {
		if idx := strings.Index(line, kw); idx >= 0 {
			company = strings.TrimRight(strings.TrimSpace(line[:idx]), ",")
			return company, kw
		}
	}
	return strings.TrimSpace(line), ""
}
