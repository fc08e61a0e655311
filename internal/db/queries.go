package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

// ErrUniqueConstraint is returned when an insert violates a UNIQUE constraint.
var ErrUniqueConstraint = &errors.VitaeError{
	Code:    "UNIQUE_CONSTRAINT",
	Status:  409,
	Message: "unique constraint violation",
}

// Insert stores a new archived resume in the database.
func Insert(db *sql.DB, a *resume.Archived) error {
	recordJSON, err := marshalRecord(a.Record)
	if err != nil {
		return err
	}

	nameRaw := toNullString(a.NameRaw)
	nameNorm := toNullString(a.NameNorm)
	source := toNullString(a.Source)

	query := `
		INSERT INTO resumes (
			id, name_raw, name_norm, source, raw_text,
			record_json, text_chars, created_at, updated_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`

	_, err = db.Exec(query,
		a.ID, nameRaw, nameNorm, source, a.RawText,
		recordJSON, a.TextChars, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUniqueConstraint
		}
		return errors.NewInternal(err)
	}

	return nil
}

// Upsert inserts a named resume or, when an active row with the same
// name_norm exists, replaces its text and record in place. Returns the
// stored row's ID, which is the existing row's ID on replacement. Callers
// with an unnamed resume should use Insert.
func Upsert(db *sql.DB, a *resume.Archived) (string, error) {
	if a.NameNorm == nil {
		return "", errors.NewInvalidRequest("upsert requires a name")
	}

	recordJSON, err := marshalRecord(a.Record)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO resumes (
			id, name_raw, name_norm, source, raw_text,
			record_json, text_chars, created_at, updated_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(name_norm) WHERE name_norm IS NOT NULL AND deleted_at IS NULL
		DO UPDATE SET
			raw_text = excluded.raw_text,
			record_json = excluded.record_json,
			source = excluded.source,
			text_chars = excluded.text_chars,
			updated_at = excluded.updated_at
		RETURNING id
	`

	var storedID string
	err = db.QueryRow(query,
		a.ID, toNullString(a.NameRaw), *a.NameNorm, toNullString(a.Source), a.RawText,
		recordJSON, a.TextChars, a.CreatedAt, a.UpdatedAt,
	).Scan(&storedID)
	if err != nil {
		return "", errors.NewInternal(err)
	}

	return storedID, nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetByID retrieves an archived resume by its ULID.
// If includeDeleted is false, soft-deleted resumes are excluded.
func GetByID(db *sql.DB, id string, includeDeleted bool) (*resume.Archived, error) {
	query := selectColumns + ` FROM resumes WHERE id = ?`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	row := db.QueryRow(query, id)
	a, err := scanArchived(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return a, nil
}

// GetByName retrieves an archived resume by normalized name.
// If includeDeleted is false, soft-deleted resumes are excluded.
func GetByName(db *sql.DB, nameNorm string, includeDeleted bool) (*resume.Archived, error) {
	query := selectColumns + ` FROM resumes WHERE name_norm = ?`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	} else {
		// Prefer the active row; fall back to the most recently updated
		// soft-deleted one.
		query += " ORDER BY (deleted_at IS NULL) DESC, updated_at DESC LIMIT 1"
	}

	row := db.QueryRow(query, nameNorm)
	a, err := scanArchived(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(nameNorm)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return a, nil
}

// CheckNameExists checks if an active resume with the given name exists.
func CheckNameExists(db *sql.DB, nameNorm string) (bool, error) {
	query := `
		SELECT 1 FROM resumes
		WHERE name_norm = ? AND deleted_at IS NULL
		LIMIT 1
	`

	var exists int
	err := db.QueryRow(query, nameNorm).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternal(err)
	}

	return true, nil
}

// SoftDelete marks a resume as deleted by setting deleted_at.
func SoftDelete(db *sql.DB, id string) error {
	now := time.Now().Unix()

	query := `
		UPDATE resumes
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := db.Exec(query, now, id)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(id)
	}

	return nil
}

// PurgeDeleted permanently removes soft-deleted rows older than cutoff
// (Unix seconds). A cutoff of 0 removes all soft-deleted rows.
func PurgeDeleted(db *sql.DB, cutoff int64) (int64, error) {
	query := `DELETE FROM resumes WHERE deleted_at IS NOT NULL`
	args := []any{}
	if cutoff > 0 {
		query += ` AND deleted_at < ?`
		args = append(args, cutoff)
	}

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	purged, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return purged, nil
}

// List retrieves resume summaries sorted by updated_at descending, with
// pagination. Returns the page plus the total row count.
func List(db *sql.DB, limit, offset int, includeDeleted bool) ([]resume.ArchivedSummary, int, error) {
	where := ""
	if !includeDeleted {
		where = " WHERE deleted_at IS NULL"
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM resumes` + where).Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	query := selectColumns + ` FROM resumes` + where + `
		ORDER BY updated_at DESC
		LIMIT ? OFFSET ?`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	summaries := []resume.ArchivedSummary{}
	for rows.Next() {
		a, err := ScanArchivedFromRows(rows)
		if err != nil {
			return nil, 0, errors.NewInternal(err)
		}
		summaries = append(summaries, a.ToSummary())
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	return summaries, total, nil
}

// StreamForExport returns rows for export, sorted by created_at ascending so
// export files are stable across runs. Caller must Close the rows.
func StreamForExport(ctx context.Context, db *sql.DB, includeDeleted bool) (*sql.Rows, error) {
	query := selectColumns + ` FROM resumes`
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at ASC"

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return rows, nil
}

const selectColumns = `
	SELECT id, name_raw, name_norm, source, raw_text,
		record_json, text_chars, created_at, updated_at, deleted_at`

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

// ScanArchivedFromRows scans the current row of a multi-row result set.
func ScanArchivedFromRows(rows *sql.Rows) (*resume.Archived, error) {
	return scanArchived(rows)
}

// scanArchived scans one row into an Archived struct, decoding record_json.
func scanArchived(row scanner) (*resume.Archived, error) {
	var (
		a          resume.Archived
		nameRaw    sql.NullString
		nameNorm   sql.NullString
		source     sql.NullString
		recordJSON string
		deletedAt  sql.NullInt64
	)

	err := row.Scan(
		&a.ID, &nameRaw, &nameNorm, &source, &a.RawText,
		&recordJSON, &a.TextChars, &a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	a.NameRaw = fromNullString(nameRaw)
	a.NameNorm = fromNullString(nameNorm)
	a.Source = fromNullString(source)

	if deletedAt.Valid {
		a.DeletedAt = &deletedAt.Int64
	}

	rec := &resume.Record{}
	if err := json.Unmarshal([]byte(recordJSON), rec); err != nil {
		return nil, err
	}
	rec.EnsureDefaults()
	a.Record = rec

	return &a, nil
}

// marshalRecord serializes the structured record for storage.
func marshalRecord(rec *resume.Record) (string, error) {
	if rec == nil {
		rec = &resume.Record{}
		rec.EnsureDefaults()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return string(data), nil
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
