// Package site renders a structured resume record into a static portfolio
// website: an index.html plus its stylesheet and script, ready to host
// anywhere.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

//go:embed templates/portfolio.html
var templateFS embed.FS

//go:embed static/style.css static/main.js
var staticFS embed.FS

// Generator renders portfolio sites from resume records.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator parses the embedded portfolio template.
// Panics on a malformed embedded template; that is a build defect, not a
// runtime condition.
func NewGenerator() *Generator {
	funcMap := template.FuncMap{
		"markdown": renderInlineMarkdown,
		"anchor":   anchorID,
	}
	tmpl := template.Must(template.New("portfolio").Funcs(funcMap).ParseFS(templateFS, "templates/portfolio.html"))
	return &Generator{tmpl: tmpl}
}

// pageData is the template context for the portfolio page.
type pageData struct {
	Record *resume.Record
	Title  string
}

// Generate writes the portfolio site for rec into outDir, creating the
// directory if needed. Returns the relative paths of the files written.
func (g *Generator) Generate(rec *resume.Record, outDir string) ([]string, error) {
	if rec == nil {
		return nil, errors.NewInvalidRequest("record is required")
	}
	if outDir == "" {
		return nil, errors.NewInvalidRequest("output directory is required")
	}

	for _, dir := range []string{outDir, filepath.Join(outDir, "css"), filepath.Join(outDir, "js")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to create site directory: %w", err))
		}
	}

	title := rec.ContactInfo.Name
	if title == "" {
		title = "Portfolio"
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "portfolio.html", pageData{Record: rec, Title: title}); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to render portfolio: %w", err))
	}

	files := []struct {
		rel     string
		content []byte
	}{
		{"index.html", buf.Bytes()},
		{filepath.Join("css", "style.css"), mustStatic("static/style.css")},
		{filepath.Join("js", "main.js"), mustStatic("static/main.js")},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(outDir, f.rel), f.content, 0644); err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to write %s: %w", f.rel, err))
		}
		written = append(written, f.rel)
	}

	return written, nil
}

// mustStatic reads an embedded static asset.
func mustStatic(name string) []byte {
	data, err := staticFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// renderInlineMarkdown converts one line of markdown (bold, links, code
// spans) to HTML, dropping the wrapping paragraph tag goldmark adds.
func renderInlineMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out)
}

// anchorID converts a heading into a URL-safe fragment identifier.
func anchorID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}
