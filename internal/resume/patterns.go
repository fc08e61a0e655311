package resume

import (
	"regexp"
	"strings"
)

// monthNames is the alternation used by the date span pattern. Full month
// names match too because the pattern allows trailing letters ("January").
const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// datePattern matches a free-text date span: "Jan 2022 - Present",
// "June 2021 – Aug 2021", or a single "May 2023". The span is stored
// verbatim as a duration, never decomposed into calendar values.
var datePattern = regexp.MustCompile(
	`(?:` + monthNames + `)[A-Za-z]*\.?\s+\d{4}` +
		`(?:\s*[-–—]\s*(?:(?:` + monthNames + `)[A-Za-z]*\.?\s+\d{4}|[Pp]resent))?`)

// bulletMarkers are the glyphs that open a description line. The two-char
// entries require a trailing space so hyphenated words and emphasis are not
// mistaken for bullets.
var bulletMarkers = []string{"•", "●", "▪", "‣", "- ", "* "}

// IsBullet reports whether a trimmed line begins with a bullet marker.
func IsBullet(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// StripBullet removes a leading bullet marker and surrounding whitespace.
// Lines without a marker are returned trimmed.
func StripBullet(line string) string {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	return strings.TrimSpace(line)
}

// splitDate extracts the first date span from a line. It returns the span,
// the line with the span removed and trimmed, and whether a span was found.
func splitDate(line string) (duration, rest string, ok bool) {
	loc := datePattern.FindStringIndex(line)
	if loc == nil {
		return "", line, false
	}
	duration = line[loc[0]:loc[1]]
	rest = strings.TrimSpace(strings.TrimSpace(line[:loc[0]]) + " " + strings.TrimSpace(line[loc[1]:]))
	return duration, rest, true
}

// splitPipeHeader recognizes the "Name | Remainder" entry-header shape used
// by the project, education, and certification sections. A line qualifies
// only when it carries both a pipe separator and a date span.
func splitPipeHeader(line string) (name, remainder string, ok bool) {
	before, after, found := strings.Cut(line, "|")
	if !found {
		return "", "", false
	}
	if !datePattern.MatchString(line) {
		return "", "", false
	}
	return strings.TrimSpace(before), strings.TrimSpace(after), true
}

// splitComma splits a comma-separated list, trimming items and dropping
// empty ones.
func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			items = append(items, t)
		}
	}
	return items
}
