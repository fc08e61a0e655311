package resume

// certState names the states of the certification machine.
type certState int

const (
	certAwaitingEntry certState = iota
	certInEntry
)

// CertificationParser recovers entries from the CERTIFICATIONS section.
// Header recognition matches the education parser ("Name | Issuer Date"),
// bullet accumulation matches the experience parser.
type CertificationParser struct{}

// Parse runs the two-state machine over the section lines.
func (CertificationParser) Parse(lines []string) []Certification {
	var m certMachine
	entries := []Certification{}
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

type certMachine struct {
	state certState
	open  Certification
}

func (m *certMachine) step(line string) *Certification {
	if line == "" {
		return nil
	}

	if name, remainder, ok := splitPipeHeader(line); ok {
		closed := m.finish()
		duration, issuer, _ := splitDate(remainder)
		m.open = Certification{
			Name:        name,
			Issuer:      issuer,
			Duration:    duration,
			Description: []string{},
		}
		m.state = certInEntry
		return closed
	}

	if m.state == certInEntry && IsBullet(line) {
		m.open.Description = append(m.open.Description, StripBullet(line))
	}
	return nil
}

func (m *certMachine) finish() *Certification {
	if m.state != certInEntry {
		return nil
	}
	closed := m.open
	m.state = certAwaitingEntry
	m.open = Certification{}
	return &closed
}
