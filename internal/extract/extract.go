// Package extract linearizes source documents into plain text for parsing.
// Dispatch is by file extension; the output is a flat text stream with one
// line per visual line, which is what the line-oriented parser expects.
package extract

import (
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/hollisgrant/vitae/internal/errors"
)

// Text reads the document at path and returns its plain-text content.
// Unknown extensions return UNSUPPORTED_FORMAT; readable-but-broken files
// return SOURCE_UNREADABLE.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".text", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewSourceUnreadable(path, err)
		}
		return string(data), nil
	case ".pdf":
		return pdfText(path)
	case ".docx":
		return docxText(path)
	default:
		return "", errors.NewUnsupportedFormat(ext)
	}
}

// pdfText concatenates the plain text of every page. Pages with a null
// value (empty or image-only) are skipped.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", errors.NewSourceUnreadable(path, err)
	}
	defer f.Close()

	var b strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.NewSourceUnreadable(path, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// wordXMLTag matches any tag in the document XML after paragraph breaks
// have been converted to newlines.
var wordXMLTag = regexp.MustCompile(`<[^>]+>`)

// docxText extracts the document body and flattens its XML: paragraph ends
// become newlines, remaining tags are dropped, entities are unescaped.
func docxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", errors.NewSourceUnreadable(path, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = wordXMLTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
