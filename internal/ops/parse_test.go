package ops

import (
	"context"
	"testing"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

func TestParse_ReturnsRecordAndReport(t *testing.T) {
	out, err := Parse(context.Background(), resume.NewParser(), config.DefaultConfig(), ParseInput{Text: sampleResumeText})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Record.ContactInfo.Name != "Jane Doe" {
		t.Errorf("Name = %q", out.Record.ContactInfo.Name)
	}
	if len(out.Record.WorkExperience) != 1 {
		t.Errorf("WorkExperience = %+v", out.Record.WorkExperience)
	}
	if out.Report == nil || !out.Report.Valid {
		t.Errorf("Report = %+v", out.Report)
	}
}

func TestParse_EmptyTextRejected(t *testing.T) {
	_, err := Parse(context.Background(), resume.NewParser(), config.DefaultConfig(), ParseInput{})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestParse_OversizedTextRejected(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TextMaxChars = 10
	_, err := Parse(context.Background(), resume.NewParser(), cfg, ParseInput{Text: sampleResumeText})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestParse_UnstructuredTextStillParses(t *testing.T) {
	out, err := Parse(context.Background(), resume.NewParser(), config.DefaultConfig(), ParseInput{Text: "just some prose"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Record.WorkExperience == nil {
		t.Error("collections not defaulted")
	}
	if out.Report.Valid {
		t.Error("report should flag text with no recognized headers")
	}
}
