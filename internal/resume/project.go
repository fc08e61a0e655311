package resume

// projState names the states of the project machine.
type projState int

const (
	projAwaitingEntry projState = iota
	projInEntry
)

// ProjectParser recovers entries from the PROJECTS section. An entry header
// is a "Name | Remainder" line that also carries a date span: the span
// becomes the duration and the remainder minus the span becomes the URL.
// Bullet handling matches the experience parser; there is no affiliation
// line.
type ProjectParser struct{}

// Parse runs the two-state machine over the section lines.
func (ProjectParser) Parse(lines []string) []Project {
	var m projMachine
	entries := []Project{}
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

type projMachine struct {
	state projState
	open  Project
}

func (m *projMachine) step(line string) *Project {
	if line == "" {
		return nil
	}

	if name, remainder, ok := splitPipeHeader(line); ok {
		closed := m.finish()
		duration, url, _ := splitDate(remainder)
		m.open = Project{
			Name:        name,
			URL:         url,
			Duration:    duration,
			Description: []string{},
		}
		m.state = projInEntry
		return closed
	}

	if m.state == projInEntry && IsBullet(line) {
		m.open.Description = append(m.open.Description, StripBullet(line))
	}
	return nil
}

func (m *projMachine) finish() *Project {
	if m.state != projInEntry {
		return nil
	}
	closed := m.open
	m.state = projAwaitingEntry
	m.open = Project{}
	return &closed
}
