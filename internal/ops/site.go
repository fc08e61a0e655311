package ops

import (
	"database/sql"
	"path/filepath"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/db"
	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
	"github.com/hollisgrant/vitae/internal/site"
)

// SiteInput contains parameters for the Site operation.
type SiteInput struct {
	ID     string
	Name   string
	OutDir string // optional, defaults to the configured site output dir
}

// SiteOutput contains the result of the Site operation.
type SiteOutput struct {
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

// Site generates a static portfolio website from a stored resume.
func Site(database *sql.DB, cfg *config.Config, input SiteInput) (*SiteOutput, error) {
	addr, err := ValidateAddress(input.ID, input.Name)
	if err != nil {
		return nil, err
	}

	var a *resume.Archived
	if addr.ByID {
		a, err = db.GetByID(database, addr.ID, false)
	} else {
		a, err = db.GetByName(database, addr.Name, false)
	}
	if err != nil {
		return nil, err
	}

	outDir := input.OutDir
	if outDir == "" && cfg != nil {
		outDir = cfg.SiteOutDir
	}
	if outDir == "" {
		return nil, errors.NewInvalidRequest("output directory is required")
	}

	absDir, err := filepath.Abs(outDir)
	if err != nil {
		return nil, errors.NewInvalidRequest("invalid output directory")
	}

	files, err := site.NewGenerator().Generate(a.Record, absDir)
	if err != nil {
		return nil, err
	}

	return &SiteOutput{Path: absDir, Files: files}, nil
}
