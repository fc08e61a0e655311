package ops

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hollisgrant/vitae/internal/db"
)

// PurgeInput contains parameters for the Purge operation.
type PurgeInput struct {
	OlderThanDays *int // optional, only purge if deleted_at < (now - N days)
}

// PurgeOutput contains the result of the Purge operation.
type PurgeOutput struct {
	Purged  int64  `json:"purged"`
	Message string `json:"message"`
}

// Purge permanently deletes soft-deleted resumes.
func Purge(database *sql.DB, input PurgeInput) (*PurgeOutput, error) {
	var cutoff int64
	if input.OlderThanDays != nil {
		cutoff = time.Now().Unix() - int64(*input.OlderThanDays)*86400
	}

	count, err := db.PurgeDeleted(database, cutoff)
	if err != nil {
		return nil, err
	}

	return &PurgeOutput{
		Purged:  count,
		Message: formatPurgeMessage(count, input.OlderThanDays),
	}, nil
}

// formatPurgeMessage creates a human-readable message for the purge result.
func formatPurgeMessage(count int64, olderThanDays *int) string {
	if count == 0 {
		return "No deleted resumes to purge"
	}

	word := "resume"
	if count > 1 {
		word = "resumes"
	}

	msg := fmt.Sprintf("Permanently deleted %d %s", count, word)
	if olderThanDays != nil {
		msg += fmt.Sprintf(" (deleted more than %d days ago)", *olderThanDays)
	}
	return msg
}
