// Package content loads Markdown source files: it separates YAML frontmatter
// from the body and renders the body to HTML for embedding in a layout
// template.
package content

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrUnterminatedFrontmatter indicates a document opened a frontmatter block
// without closing it.
var ErrUnterminatedFrontmatter = errors.New("frontmatter opening delimiter without closing delimiter")

var delim = []byte("---")

// Split separates `---`-delimited YAML frontmatter from the Markdown body.
// Documents without a leading delimiter yield an empty meta map and the full
// input as body.
func Split(raw []byte) (map[string]any, []byte, error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	open := append(append([]byte{}, delim...), '\n')
	if !bytes.HasPrefix(norm, open) {
		return map[string]any{}, raw, nil
	}

	rest := norm[len(open):]

	var meta, body []byte
	switch {
	case bytes.HasPrefix(rest, open):
		// Empty frontmatter block.
		meta, body = nil, rest[len(open):]
	default:
		closeSeq := []byte("\n---\n")
		if idx := bytes.Index(rest, closeSeq); idx >= 0 {
			meta, body = rest[:idx+1], rest[idx+len(closeSeq):]
		} else if bytes.HasSuffix(rest, []byte("\n---")) {
			meta, body = rest[:len(rest)-len(delim)], nil
		} else {
			return nil, nil, ErrUnterminatedFrontmatter
		}
	}

	fields := map[string]any{}
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fields); err != nil {
			return nil, nil, err
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}
	return fields, body, nil
}
