package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
)

// Document is a loaded input document.
type Document struct {
	Path string
	Text string
	HTML bool // Text was extracted from HTML markup
}

// ReadDocument loads the document at path. Files ending in .html or .htm
// are reduced to their visible text.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w: %w", path, internalerr.ErrInputUnavailable, err)
	}

	doc := Document{Path: path, Text: string(data)}
	if isHTMLPath(path) {
		doc.Text = ExtractText(doc.Text)
		doc.HTML = true
	}
	return doc, nil
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
