package resume

import "context"

// Strategy converts linearized resume text into a Record. The heuristic
// Parser below is the canonical implementation; internal/llm provides a
// model-backed alternative behind the same interface.
type Strategy interface {
	Parse(ctx context.Context, text string) (*Record, error)
}

// Parser is the heuristic, line-oriented implementation. It holds no state:
// parsing is a pure function of the input text, so a single Parser is safe
// for concurrent use.
type Parser struct{}

// NewParser returns the heuristic parser.
func NewParser() Parser {
	return Parser{}
}

// Parse implements Strategy. The heuristic pipeline cannot fail; the error
// is always nil.
func (p Parser) Parse(_ context.Context, text string) (*Record, error) {
	return p.ParseText(text), nil
}

// ParseText runs the full pipeline: line split, contact extraction over the
// whole text, then one section parser per recognized header. Sections are
// independent; a missing header yields an empty collection, never an error.
func (p Parser) ParseText(text string) *Record {
	lines := Lines(text)

	rec := &Record{
		ContactInfo:      ExtractContact(text),
		Skills:           SkillsParser{}.Parse(Locate(lines, HeaderSkills)),
		WorkExperience:   ExperienceParser{}.Parse(Locate(lines, HeaderWorkExperience)),
		Projects:         ProjectParser{}.Parse(Locate(lines, HeaderProjects)),
		Education:        EducationParser{}.Parse(Locate(lines, HeaderEducation)),
		Certifications:   CertificationParser{}.Parse(Locate(lines, HeaderCertifications)),
		Extracurriculars: ExtracurricularParser{}.Parse(Locate(lines, HeaderExtracurriculars)),
	}
	rec.EnsureDefaults()
	return rec
}
