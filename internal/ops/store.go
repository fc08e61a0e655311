package ops

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/db"
	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

// StoreMode controls collision behavior.
type StoreMode string

const (
	StoreModeError   StoreMode = "error"   // default: fail on name collision
	StoreModeReplace StoreMode = "replace" // overwrite existing
)

// StoreInput contains parameters for the Store operation.
type StoreInput struct {
	Name   *string        // optional
	Text   string         // required
	Source *string        // optional provenance, e.g. a file path or "stdin"
	Record *resume.Record // optional pre-parsed record; parsed from Text when nil
	Mode   StoreMode      // default: StoreModeError
}

// StoreOutput contains the result of the Store operation.
type StoreOutput struct {
	ID        string `json:"id"`
	Candidate string `json:"candidate,omitempty"`
}

// Store parses and archives a resume.
func Store(ctx context.Context, database *sql.DB, cfg *config.Config, strategy resume.Strategy, input StoreInput) (*StoreOutput, error) {
	if input.Text == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}

	if input.Mode == "" {
		input.Mode = StoreModeError
	}
	if input.Mode != StoreModeError && input.Mode != StoreModeReplace {
		return nil, errors.NewInvalidRequest("mode must be one of: error, replace")
	}
	input.Source = cleanOptionalString(input.Source)

	// Normalize name if provided
	var nameRaw, nameNorm *string
	if input.Name != nil {
		normalized := resume.Normalize(*input.Name)
		if normalized == "" {
			return nil, errors.NewInvalidRequest("name must not be empty (omit it for unnamed resumes)")
		}
		nameRaw = input.Name
		nameNorm = &normalized
	}

	maxChars := 0
	if cfg != nil {
		maxChars = cfg.TextMaxChars
	}
	if maxChars > 0 && resume.CountChars(input.Text) > maxChars {
		return nil, errors.NewInvalidRequest("text exceeds the configured size limit")
	}

	// Pre-flight the name before parsing: a taken name fails the request
	// anyway, and the strategy may be an LLM call. The UNIQUE constraint
	// on insert still backstops concurrent stores of the same name.
	if input.Mode == StoreModeError && nameNorm != nil {
		taken, err := db.CheckNameExists(database, *nameNorm)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewNameAlreadyExists(*nameRaw)
		}
	}

	rec := input.Record
	if rec == nil {
		var err error
		rec, err = strategy.Parse(ctx, input.Text)
		if err != nil {
			return nil, err
		}
	} else {
		rec.EnsureDefaults()
	}

	now := time.Now().Unix()
	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	a := &resume.Archived{
		ID:        id,
		NameRaw:   nameRaw,
		NameNorm:  nameNorm,
		Source:    input.Source,
		RawText:   input.Text,
		Record:    rec,
		TextChars: resume.CountChars(input.Text),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.Mode == StoreModeReplace && nameNorm != nil {
		// Atomic UPSERT avoids races between concurrent callers: if an
		// active resume with the same name exists, it is replaced in place.
		storedID, err := db.Upsert(database, a)
		if err != nil {
			return nil, err
		}
		return &StoreOutput{ID: storedID, Candidate: rec.ContactInfo.Name}, nil
	}

	if err := db.Insert(database, a); err != nil {
		if err == db.ErrUniqueConstraint {
			return nil, errors.NewNameAlreadyExists(*nameRaw)
		}
		return nil, err
	}

	return &StoreOutput{ID: id, Candidate: rec.ContactInfo.Name}, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
