package ops

import (
	"context"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

// ParseInput contains parameters for the Parse operation.
type ParseInput struct {
	Text string // required
}

// ParseOutput contains the result of the Parse operation.
type ParseOutput struct {
	Record *resume.Record     `json:"record"`
	Report *resume.LintResult `json:"report"`
}

// Parse structures resume text without storing it. The lint report rides
// along so callers can see which sections and contact fields were found;
// only oversized input is rejected.
func Parse(ctx context.Context, strategy resume.Strategy, cfg *config.Config, input ParseInput) (*ParseOutput, error) {
	if input.Text == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}

	maxChars := 0
	if cfg != nil {
		maxChars = cfg.TextMaxChars
	}
	report := resume.Lint(resume.LintInput{Text: input.Text, MaxChars: maxChars})
	if report.TooLarge {
		return nil, errors.NewInvalidRequest("text exceeds the configured size limit")
	}

	rec, err := strategy.Parse(ctx, input.Text)
	if err != nil {
		return nil, err
	}

	return &ParseOutput{Record: rec, Report: report}, nil
}
