package resume

import "strings"

// eduState names the states of the education machine.
type eduState int

const (
	eduAwaitingEntry eduState = iota
	eduInEntry
)

// EducationParser recovers entries from the EDUCATION section. An entry
// header is "Institution | Remainder" with a date span: the span becomes the
// duration and the remainder minus the span (trailing comma stripped)
// becomes the location. The next line, unless it is itself a header or a
// date line, is consumed as the degree. Education entries carry no bullets.
type EducationParser struct{}

// Parse runs the two-state machine over the section lines.
func (EducationParser) Parse(lines []string) []Education {
	var m eduMachine
	entries := []Education{}
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

type eduMachine struct {
	state      eduState
	open       Education
	wantDegree bool
}

func (m *eduMachine) step(line string) *Education {
	if line == "" {
		return nil
	}

	if institution, remainder, ok := splitPipeHeader(line); ok {
		closed := m.finish()
		duration, location, _ := splitDate(remainder)
		m.open = Education{
			Institution: institution,
			Location:    strings.TrimRight(location, ","),
			Duration:    duration,
		}
		m.state = eduInEntry
		m.wantDegree = true
		return closed
	}

	if m.state == eduInEntry && m.wantDegree {
		if !datePattern.MatchString(line) {
			m.open.Degree = line
		}
		m.wantDegree = false
	}
	return nil
}

func (m *eduMachine) finish() *Education {
	if m.state != eduInEntry {
		return nil
	}
	closed := m.open
	m.state = eduAwaitingEntry
	m.open = Education{}
	return &closed
}
