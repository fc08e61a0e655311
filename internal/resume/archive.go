package resume

// Archived is a stored resume: the raw source text plus the structured
// record produced from it, with archive bookkeeping.
type Archived struct {
	// ID is a ULID that uniquely identifies this archived resume
	ID string

	// NameRaw is the original name as provided by the user (nullable)
	NameRaw *string

	// NameNorm is the normalized name (lowercased, trimmed, collapsed spaces)
	NameNorm *string

	// Source indicates where the resume came from (e.g., a file path, "stdin")
	Source *string

	// RawText is the linearized resume text that was parsed
	RawText string

	// Record is the structured parse result
	Record *Record

	// TextChars is the character count of RawText (runes, not bytes)
	TextChars int

	// CreatedAt is the Unix timestamp when the resume was stored
	CreatedAt int64

	// UpdatedAt is the Unix timestamp when the resume was last updated
	UpdatedAt int64

	// DeletedAt is the Unix timestamp for soft delete (nullable)
	DeletedAt *int64
}

// ArchivedSummary is an archived resume's metadata without the raw text or
// full record. Used for list output to reduce data transfer.
type ArchivedSummary struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	NameNorm  *string `json:"name_norm,omitempty"`
	Source    *string `json:"source,omitempty"`
	Candidate string  `json:"candidate,omitempty"`
	TextChars int     `json:"text_chars"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// ExportRecord is the JSONL serialization of an archived resume. Field
// names are the stable export contract; re-importing tools rely on them.
type ExportRecord struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Source    *string `json:"source,omitempty"`
	RawText   string  `json:"raw_text"`
	Record    *Record `json:"record"`
	TextChars int     `json:"text_chars"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
	DeletedAt *int64  `json:"deleted_at,omitempty"`
}

// ToExportRecord converts an Archived to its export form.
func (a *Archived) ToExportRecord() ExportRecord {
	return ExportRecord{
		ID:        a.ID,
		Name:      a.NameRaw,
		Source:    a.Source,
		RawText:   a.RawText,
		Record:    a.Record,
		TextChars: a.TextChars,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		DeletedAt: a.DeletedAt,
	}
}

// ToSummary converts an Archived to its summary form. Candidate is the
// parsed contact name when one was extracted.
func (a *Archived) ToSummary() ArchivedSummary {
	s := ArchivedSummary{
		ID:        a.ID,
		Name:      a.NameRaw,
		NameNorm:  a.NameNorm,
		Source:    a.Source,
		TextChars: a.TextChars,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Record != nil {
		s.Candidate = a.Record.ContactInfo.Name
	}
	return s
}
