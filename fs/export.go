// Package fs provides file-based export of scraped records.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/radscrape/radscrape"
)

// RecordFilename converts a source-local identifier to a JSON filename.
// Characters outside [a-zA-Z0-9._-] are replaced with underscores so the
// name is safe on common filesystems.
func RecordFilename(sourceID string) string {
	var b strings.Builder
	for _, r := range sourceID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + ".json"
}

// Exporter writes records as JSON files under a directory, cases and
// articles in separate subdirectories.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter rooted at dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// WriteCase writes a case to <dir>/cases/<source_id>.json and returns the
// written path. Parent directories are created as needed.
func (e *Exporter) WriteCase(c *radscrape.Case) (string, error) {
	payload, err := c.ToJSON()
	if err != nil {
		return "", err
	}
	return e.write(filepath.Join("cases", RecordFilename(c.SourceID)), payload)
}

// WriteArticle writes an article to <dir>/articles/<source_id>.json and
// returns the written path.
func (e *Exporter) WriteArticle(a *radscrape.Article) (string, error) {
	payload, err := a.ToJSON()
	if err != nil {
		return "", err
	}
	return e.write(filepath.Join("articles", RecordFilename(a.SourceID)), payload)
}

func (e *Exporter) write(rel, payload string) (string, error) {
	path := filepath.Join(e.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(payload+"\n"), 0644); err != nil {
		return "", err
	}
	return path, nil
}
