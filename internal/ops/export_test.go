package ops

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

// exportConfig allows writing anywhere under the test temp dir.
func exportConfig(dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.AllowedPaths = []string{dir}
	return cfg
}

func TestExport_WritesHeaderAndRecords(t *testing.T) {
	database := setupTestDB(t)
	dir := t.TempDir()
	cfg := exportConfig(dir)
	parser := resume.NewParser()

	for _, name := range []string{"one", "two"} {
		if _, err := Store(context.Background(), database, cfg, parser, StoreInput{Name: stringPtr(name), Text: sampleResumeText}); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}

	path := filepath.Join(dir, "out.jsonl")
	out, err := Export(context.Background(), database, cfg, ExportInput{Path: path})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	if out.Path != path {
		t.Errorf("Path = %q", out.Path)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		t.Fatal("empty export file")
	}
	var header ExportHeader
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil {
		t.Fatalf("header not JSON: %v", err)
	}
	if !header.VitaeExport || header.SchemaVersion != "1.0" {
		t.Errorf("header = %+v", header)
	}

	lines := 0
	for scanner.Scan() {
		var rec resume.ExportRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("record line not JSON: %v", err)
		}
		if rec.ID == "" || rec.Record == nil {
			t.Errorf("incomplete record: %+v", rec)
		}
		lines++
	}
	if lines != 2 {
		t.Errorf("record lines = %d, want 2", lines)
	}
}

func TestExport_ExcludesDeletedByDefault(t *testing.T) {
	database := setupTestDB(t)
	dir := t.TempDir()
	cfg := exportConfig(dir)
	parser := resume.NewParser()

	stored, err := Store(context.Background(), database, cfg, parser, StoreInput{Text: sampleResumeText})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := Delete(database, DeleteInput{ID: stored.ID}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	out, err := Export(context.Background(), database, cfg, ExportInput{Path: filepath.Join(dir, "a.jsonl")})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("Count = %d, want 0", out.Count)
	}

	out, err = Export(context.Background(), database, cfg, ExportInput{
		Path:           filepath.Join(dir, "b.jsonl"),
		IncludeDeleted: true,
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("Count with deleted = %d, want 1", out.Count)
	}
}

func TestExport_RejectsBadExtension(t *testing.T) {
	database := setupTestDB(t)
	dir := t.TempDir()

	_, err := Export(context.Background(), database, exportConfig(dir), ExportInput{Path: filepath.Join(dir, "out.json")})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestExport_RejectsTraversal(t *testing.T) {
	database := setupTestDB(t)
	dir := t.TempDir()

	_, err := Export(context.Background(), database, exportConfig(dir), ExportInput{Path: filepath.Join(dir, "..", "out.jsonl")})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestExport_RejectsDisallowedDirectory(t *testing.T) {
	database := setupTestDB(t)

	// config without AllowedPaths: only ~/.vitae/exports is allowed
	_, err := Export(context.Background(), database, config.DefaultConfig(), ExportInput{
		Path: filepath.Join(t.TempDir(), "out.jsonl"),
	})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestExport_AllowUnsafePaths(t *testing.T) {
	database := setupTestDB(t)
	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true

	nested := filepath.Join(t.TempDir(), "deeply", "nested")
	out, err := Export(context.Background(), database, cfg, ExportInput{Path: filepath.Join(nested, "out.jsonl")})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, statErr := os.Stat(out.Path); statErr != nil {
		t.Errorf("export file missing: %v", statErr)
	}
}

func TestValidatePath_EmptyPath(t *testing.T) {
	if err := ValidatePath("", config.DefaultConfig()); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestContainsTraversal(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/safe/path/file.jsonl", false},
		{"../escape.jsonl", true},
		{"/a/../b.jsonl", true},
		{"..\\windows.jsonl", true},
		{"/a/..b/file.jsonl", false},
	}
	for _, tt := range tests {
		if got := containsTraversal(tt.path); got != tt.want {
			t.Errorf("containsTraversal(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
