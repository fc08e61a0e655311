package ops

import (
	"database/sql"

	"github.com/hollisgrant/vitae/internal/db"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID   string
	Name string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete soft-deletes a resume.
func Delete(database *sql.DB, input DeleteInput) (*DeleteOutput, error) {
	addr, err := ValidateAddress(input.ID, input.Name)
	if err != nil {
		return nil, err
	}

	// Resolve name-mode addressing to an ID first (active rows only)
	var resumeID string
	if addr.ByID {
		if _, err := db.GetByID(database, addr.ID, false); err != nil {
			return nil, err
		}
		resumeID = addr.ID
	} else {
		a, err := db.GetByName(database, addr.Name, false)
		if err != nil {
			return nil, err
		}
		resumeID = a.ID
	}

	if err := db.SoftDelete(database, resumeID); err != nil {
		return nil, err
	}

	return &DeleteOutput{Deleted: true, ID: resumeID}, nil
}
