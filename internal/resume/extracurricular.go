package resume

// ExtracurricularParser reads the EXTRACURRICULARS section: every bullet
// line yields one activity string (marker stripped), in source order.
// Non-bullet lines are ignored; no state machine is needed.
type ExtracurricularParser struct{}

// Parse filters the section lines down to bullet contents.
func (ExtracurricularParser) Parse(lines []string) []string {
	activities := []string{}
	for _, line := range lines {
		if IsBullet(line) {
			activities = append(activities, StripBullet(line))
		}
	}
	return activities
}
