package ops

import (
	"context"
	"fmt"
	"testing"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/resume"
)

func TestList_DefaultsAndPagination(t *testing.T) {
	database := setupTestDB(t)
	cfg := config.DefaultConfig()
	parser := resume.NewParser()

	for i := 0; i < 3; i++ {
		_, err := Store(context.Background(), database, cfg, parser, StoreInput{
			Name: stringPtr(fmt.Sprintf("resume-%d", i)),
			Text: sampleResumeText,
		})
		if err != nil {
			t.Fatalf("Store %d failed: %v", i, err)
		}
	}

	out, err := List(database, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Items) != 3 {
		t.Errorf("items = %d, want 3", len(out.Items))
	}
	if out.Pagination.Limit != DefaultListLimit {
		t.Errorf("Limit = %d, want default", out.Pagination.Limit)
	}
	if out.Pagination.Total != 3 || out.Pagination.HasMore {
		t.Errorf("Pagination = %+v", out.Pagination)
	}
	if out.Sort != "updated_at_desc" {
		t.Errorf("Sort = %q", out.Sort)
	}
	if out.Items[0].Candidate != "Jane Doe" {
		t.Errorf("Candidate = %q", out.Items[0].Candidate)
	}
}

func TestList_LimitCapped(t *testing.T) {
	database := setupTestDB(t)

	out, err := List(database, ListInput{Limit: 10000})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Pagination.Limit != MaxListLimit {
		t.Errorf("Limit = %d, want %d", out.Pagination.Limit, MaxListLimit)
	}
}

func TestList_HasMore(t *testing.T) {
	database := setupTestDB(t)
	cfg := config.DefaultConfig()
	parser := resume.NewParser()

	for i := 0; i < 3; i++ {
		if _, err := Store(context.Background(), database, cfg, parser, StoreInput{Text: sampleResumeText}); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}

	out, err := List(database, ListInput{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Items) != 2 || !out.Pagination.HasMore {
		t.Errorf("page = %d items, HasMore = %v", len(out.Items), out.Pagination.HasMore)
	}
}

func TestList_EmptyDatabase(t *testing.T) {
	database := setupTestDB(t)

	out, err := List(database, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
	if out.Pagination.Total != 0 {
		t.Errorf("Total = %d", out.Pagination.Total)
	}
}
