package resume

// LintInput contains parameters for linting resume text.
type LintInput struct {
	Text     string
	MaxChars int
}

// LintResult reports how much of the text the parser can anchor on. A
// resume with no recognized headers still parses, but everything outside
// contact extraction is lost; lint surfaces that before storage.
type LintResult struct {
	Valid           bool     `json:"valid"`
	MissingSections []string `json:"missing_sections,omitempty"`
	MissingContact  []string `json:"missing_contact,omitempty"`
	TooLarge        bool     `json:"too_large,omitempty"`
	ActualChars     int      `json:"actual_chars"`
	MaxChars        int      `json:"max_chars,omitempty"`
	EstimatedTokens int      `json:"estimated_tokens"`
}

// Lint checks resume text for recognizable structure. Valid means at least
// one section header was found and the text fits the size limit; missing
// contact fields are reported but never fail the lint.
func Lint(input LintInput) *LintResult {
	result := &LintResult{
		Valid:           true,
		ActualChars:     CountChars(input.Text),
		MaxChars:        input.MaxChars,
		EstimatedTokens: EstimateTokens(input.Text),
	}

	if input.MaxChars > 0 && result.ActualChars > input.MaxChars {
		result.TooLarge = true
		result.Valid = false
	}

	lines := Lines(input.Text)
	for _, header := range SectionHeaders {
		if Locate(lines, header) == nil {
			result.MissingSections = append(result.MissingSections, header)
		}
	}
	if len(result.MissingSections) == len(SectionHeaders) {
		result.Valid = false
	}

	c := ExtractContact(input.Text)
	checks := []struct {
		field string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"location", c.Location},
	}
	for _, chk := range checks {
		if chk.value == "" {
			result.MissingContact = append(result.MissingContact, chk.field)
		}
	}

	return result
}
