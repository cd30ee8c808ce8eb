package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
)

// Page is a loaded Markdown source file: its frontmatter fields plus the
// body rendered to HTML. Content is template.HTML so layouts can embed it
// without re-escaping.
type Page struct {
	Title   string
	Date    time.Time
	Slug    string
	Meta    map[string]any
	Content template.HTML
}

// LoadPage reads a Markdown file, splits its frontmatter and renders the
// body. The slug falls back to the filename without extension when the
// frontmatter does not set one.
func LoadPage(path string) (*Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}

	meta, body, err := Split(raw)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter in %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("render markdown %s: %w", path, err)
	}

	p := &Page{
		Meta:    meta,
		Content: template.HTML(buf.String()),
		Slug:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
	if title, ok := meta["title"].(string); ok {
		p.Title = title
	}
	if slug, ok := meta["slug"].(string); ok && slug != "" {
		p.Slug = slug
	}
	p.Date = dateField(meta["date"])

	return p, nil
}

// dateField tolerates the two shapes yaml.v3 produces for dates: native
// timestamps and plain strings.
func dateField(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
