package resume

import "strings"

// Section header keywords recognized as boundaries. A header must occupy a
// line by itself (after trimming); the keyword inside a longer line is not a
// boundary.
const (
	HeaderSkills           = "SKILLS"
	HeaderWorkExperience   = "WORK EXPERIENCE"
	HeaderProjects         = "PROJECTS"
	HeaderEducation        = "EDUCATION"
	HeaderCertifications   = "CERTIFICATIONS"
	HeaderExtracurriculars = "EXTRACURRICULARS"
)

// SectionHeaders lists all recognized headers in canonical order.
var SectionHeaders = []string{
	HeaderSkills,
	HeaderWorkExperience,
	HeaderProjects,
	HeaderEducation,
	HeaderCertifications,
	HeaderExtracurriculars,
}

// IsSectionHeader reports whether a trimmed line is a recognized standalone
// section header (case-insensitive).
func IsSectionHeader(line string) bool {
	for _, h := range SectionHeaders {
		if strings.EqualFold(line, h) {
			return true
		}
	}
	return false
}

// Locate returns the lines strictly between the first standalone occurrence
// of header and the next recognized header, or end of input if none follows.
// Returns nil when the header never appears. The input is not mutated; the
// returned slice aliases it.
func Locate(lines []string, header string) []string {
	start := -1
	for i, line := range lines {
		if strings.EqualFold(line, header) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if IsSectionHeader(lines[i]) {
			end = i
			break
		}
	}
	return lines[start:end]
}
