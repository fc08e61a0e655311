package ops

import (
	"database/sql"

	"github.com/hollisgrant/vitae/internal/db"
	"github.com/hollisgrant/vitae/internal/resume"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID             string
	Name           string
	IncludeDeleted bool
	IncludeText    *bool // default: true (nil means default)
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	ID        string         `json:"id"`
	Name      *string        `json:"name,omitempty"`
	Source    *string        `json:"source,omitempty"`
	RawText   string         `json:"raw_text,omitempty"`
	Record    *resume.Record `json:"record"`
	TextChars int            `json:"text_chars"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
	DeletedAt *int64         `json:"deleted_at,omitempty"`
}

// Fetch retrieves an archived resume by ID or name.
func Fetch(database *sql.DB, input FetchInput) (*FetchOutput, error) {
	addr, err := ValidateAddress(input.ID, input.Name)
	if err != nil {
		return nil, err
	}

	var a *resume.Archived
	if addr.ByID {
		a, err = db.GetByID(database, addr.ID, input.IncludeDeleted)
	} else {
		a, err = db.GetByName(database, addr.Name, input.IncludeDeleted)
	}
	if err != nil {
		return nil, err
	}

	output := &FetchOutput{
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

	includeText := true
	if input.IncludeText != nil {
		includeText = *input.IncludeText
	}
	if !includeText {
		output.RawText = ""
	}

	return output, nil
}
