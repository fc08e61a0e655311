// Package resume converts linearized résumé text into a structured record.
// The input is a flat stream of lines with no reliable grammar; recovery is
// best-effort and never fails: unrecognized lines are skipped and missing
// sections yield empty collections.
package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContactInfo holds the identity fields recovered from the full text.
// Empty string means the field could not be recovered.
type ContactInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// SkillGroup is one named category of skills. Item order follows the source.
type SkillGroup struct {
	Category string
	Items    []string
}

// SkillGroups is an ordered list of skill categories. It serializes as a
// JSON object keyed by category so downstream renderers can index by name;
// key order follows first appearance in the source text.
type SkillGroups []SkillGroup

// WorkExperience is one job entry from the WORK EXPERIENCE section.
// Duration is an opaque text span, never decomposed into dates.
type WorkExperience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Project is one entry from the PROJECTS section.
type Project struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Education is one entry from the EDUCATION section. Degree may be empty
// when no degree line follows the entry header.
type Education struct {
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
}

// Certification is one entry from the CERTIFICATIONS section.
type Certification struct {
	Name        string   `json:"name"`
	Issuer      string   `json:"issuer"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Record is the assembled resume. Every collection is present even when its
// section is absent from the source; a Record is built once per parse and not
// mutated afterwards.
type Record struct {
	ContactInfo      ContactInfo      `json:"contact_info"`
	Skills           SkillGroups      `json:"skills"`
	WorkExperience   []WorkExperience `json:"work_experience"`
	Projects         []Project        `json:"projects"`
	Education        []Education      `json:"education"`
	Certifications   []Certification  `json:"certifications"`
	Extracurriculars []string         `json:"extracurriculars"`
}

// EnsureDefaults replaces nil collections with empty ones so the serialized
// form always carries every key. Called by the assembler and by decoders of
// externally produced records.
func (r *Record) EnsureDefaults() {
	if r.Skills == nil {
		r.Skills = SkillGroups{}
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkExperience{}
	}
	for i := range r.WorkExperience {
		if r.WorkExperience[i].Description == nil {
			r.WorkExperience[i].Description = []string{}
		}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Description == nil {
			r.Projects[i].Description = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	for i := range r.Certifications {
		if r.Certifications[i].Description == nil {
			r.Certifications[i].Description = []string{}
		}
	}
	if r.Extracurriculars == nil {
		r.Extracurriculars = []string{}
	}
}

// Group returns the items for a category, or nil if the category is absent.
func (g SkillGroups) Group(category string) []string {
	for _, grp := range g {
		if grp.Category == category {
			return grp.Items
		}
	}
	return nil
}

// MarshalJSON writes the groups as an object with keys in source order.
// encoding/json would sort map keys, which breaks the ordering invariant.
func (g SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Category)
		if err != nil {
			return nil, err
		}
		items := grp.Items
		if items == nil {
			items = []string{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back, preserving key order by walking
// the token stream instead of decoding into a map.
func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	var groups SkillGroups
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", keyTok)
		}
		var items []string
		if err := dec.Decode(&items); err != nil {
			return err
		}
		groups = append(groups, SkillGroup{Category: key, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = groups
	return nil
}
