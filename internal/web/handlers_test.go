package web

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hollisgrant/vitae/internal/config"
	"github.com/hollisgrant/vitae/internal/db"
	"github.com/hollisgrant/vitae/internal/ops"
	"github.com/hollisgrant/vitae/internal/resume"
)

const sampleResumeText = `Jane Doe
Austin, TX | (512) 555-0142 | jane.doe@example.com

SKILLS
Languages: Go, Python

WORK EXPERIENCE
Software Engineer Jan 2022 - Present
TechCorp, Remote
• Built data pipelines in Go

EDUCATION
State University | Austin, TX Aug 2019 - May 2023
B.S. Computer Science
`

func stringPtr(s string) *string { return &s }

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.DefaultConfig()
	cfg.SiteOutDir = tmpDir + "/portfolio_website"

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}
	renderer := NewRenderer(templateSub, "test")

	return &Handlers{
		db:       database,
		cfg:      cfg,
		renderer: renderer,
	}
}

// seedResume stores a resume and returns its ID.
func seedResume(t *testing.T, h *Handlers, name string) string {
	t.Helper()
	out, err := ops.Store(context.Background(), h.db, h.cfg, resume.NewParser(), ops.StoreInput{
		Name: stringPtr(name),
		Text: sampleResumeText,
	})
	if err != nil {
		t.Fatalf("seed resume %q: %v", name, err)
	}
	return out.ID
}

// --- HandleList ---

func TestHandleList_Default(t *testing.T) {
	h := setupTest(t)
	seedResume(t, h, "alpha")

	req := httptest.NewRequest("GET", "/resumes", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alpha") {
		t.Error("expected resume name 'alpha' in response")
	}
	if !strings.Contains(body, "Jane Doe") {
		t.Error("expected candidate name in response")
	}
}

func TestHandleList_Empty(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/resumes", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No resumes stored yet") {
		t.Error("expected empty state message")
	}
}

func TestHandleList_HtmxReturnsContentOnly(t *testing.T) {
	h := setupTest(t)
	seedResume(t, h, "htmx-test")

	req := httptest.NewRequest("GET", "/resumes", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("htmx response should not contain the layout shell")
	}
	if !strings.Contains(body, "htmx-test") {
		t.Error("expected resume name in fragment")
	}
}

func TestHandleList_ExcludesDeleted(t *testing.T) {
	h := setupTest(t)
	id := seedResume(t, h, "gone")
	if _, err := ops.Delete(h.db, ops.DeleteInput{ID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	req := httptest.NewRequest("GET", "/resumes", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if strings.Contains(rec.Body.String(), ">gone<") {
		t.Error("deleted resume should not appear by default")
	}

	req = httptest.NewRequest("GET", "/resumes?include_deleted=true", nil)
	rec = httptest.NewRecorder()
	h.HandleList(rec, req)

	if !strings.Contains(rec.Body.String(), "gone") {
		t.Error("deleted resume should appear with include_deleted")
	}
}

// --- HandleDetail ---

func TestHandleDetail(t *testing.T) {
	h := setupTest(t)
	id := seedResume(t, h, "detail-test")

	req := httptest.NewRequest("GET", "/resumes/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"detail-test", "Jane Doe", "jane.doe@example.com", "Software Engineer", "Work experience"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in detail page", want)
		}
	}
}

func TestHandleDetail_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/resumes/01NOPE", nil)
	req.SetPathValue("id", "01NOPE")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleDetail_NotFoundJSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/resumes/01NOPE", nil)
	req.SetPathValue("id", "01NOPE")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp["error"]["code"] != "NOT_FOUND" {
		t.Errorf("error code = %v, want NOT_FOUND", resp["error"]["code"])
	}
}

// --- HandleDelete ---

func TestHandleDelete(t *testing.T) {
	h := setupTest(t)
	id := seedResume(t, h, "delete-me")

	req := httptest.NewRequest("DELETE", "/resumes/"+id, nil)
	req.SetPathValue("id", id)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	_, err := ops.Fetch(h.db, ops.FetchInput{ID: id})
	if err == nil {
		t.Error("resume should be gone after delete")
	}
}

func TestHandleDelete_HtmxRedirect(t *testing.T) {
	h := setupTest(t)
	id := seedResume(t, h, "htmx-delete")

	req := httptest.NewRequest("DELETE", "/resumes/"+id, nil)
	req.SetPathValue("id", id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("HX-Redirect") != "/resumes" {
		t.Errorf("HX-Redirect = %q, want /resumes", rec.Header().Get("HX-Redirect"))
	}
}

// --- HandlePortfolio ---

func TestHandlePortfolio(t *testing.T) {
	h := setupTest(t)
	id := seedResume(t, h, "site-test")

	form := url.Values{}
	req := httptest.NewRequest("POST", "/resumes/"+id+"/portfolio", strings.NewReader(form.Encode()))
	req.SetPathValue("id", id)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandlePortfolio(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp["path"] == "" {
		t.Error("expected site path in response")
	}
}

func TestHandlePortfolio_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("POST", "/resumes/01NOPE/portfolio", nil)
	req.SetPathValue("id", "01NOPE")
	rec := httptest.NewRecorder()
	h.HandlePortfolio(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// --- HandlePurge ---

func TestHandlePurge_RequiresConfirm(t *testing.T) {
	h := setupTest(t)

	form := url.Values{}
	req := httptest.NewRequest("POST", "/resumes/purge", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandlePurge(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePurge(t *testing.T) {
	h := setupTest(t)
	id := seedResume(t, h, "purge-me")
	if _, err := ops.Delete(h.db, ops.DeleteInput{ID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	form := url.Values{"confirm": {"true"}}
	req := httptest.NewRequest("POST", "/resumes/purge", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandlePurge(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if resp["purged"] != float64(1) {
		t.Errorf("purged = %v, want 1", resp["purged"])
	}

	_, err := ops.Fetch(h.db, ops.FetchInput{ID: id, IncludeDeleted: true})
	if err == nil {
		t.Error("resume should be gone after purge")
	}
}

// --- server wiring ---

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	securityHeaders(inner).ServeHTTP(rec, req)

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options header")
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options header")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy header")
	}
}

func TestNewServer_RootRedirects(t *testing.T) {
	h := setupTest(t)
	srv := NewServer(h.db, h.cfg, "test", "127.0.0.1", 0)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/resumes" {
		t.Errorf("Location = %q, want /resumes", loc)
	}
}
