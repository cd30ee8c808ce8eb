// Package linkcheck verifies that internal references in rendered HTML
// resolve to files in the output tree. External URLs are reported as such
// but never fetched; the library does not touch the network.
package linkcheck

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Link is a reference extracted from an HTML document.
type Link struct {
	URL        string
	Tag        string
	Attr       string
	IsInternal bool
}

// Broken is an internal reference whose target does not exist in the
// output tree.
type Broken struct {
	Source string // HTML file containing the reference, relative to the root
	URL    string // the reference as written
	Target string // resolved filesystem path that was not found
}

func (b Broken) String() string {
	return fmt.Sprintf("%s: %q -> %s", b.Source, b.URL, b.Target)
}

// linkAttrs maps HTML tags to the attribute carrying their reference.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
}

// ExtractLinks returns all references found in the HTML document read from r.
func ExtractLinks(r io.Reader) ([]Link, error) {
	var links []Link

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				return links, nil
			}
			return nil, z.Err()
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		tok := z.Token()
		attr, ok := linkAttrs[tok.Data]
		if !ok {
			continue
		}
		for _, a := range tok.Attr {
			if a.Key != attr || a.Val == "" {
				continue
			}
			links = append(links, Link{
				URL:        a.Val,
				Tag:        tok.Data,
				Attr:       attr,
				IsInternal: isInternal(a.Val),
			})
		}
	}
}

// isInternal reports whether ref points into the site itself rather than at
// an external resource or an in-page anchor.
func isInternal(ref string) bool {
	if strings.HasPrefix(ref, "#") {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// VerifyDir walks the rendered HTML files under root and reports internal
// references that do not resolve to an existing file. References to a
// directory are satisfied by an index.html inside it.
func VerifyDir(root string) ([]Broken, error) {
	var broken []Broken

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		links, lerr := ExtractLinks(f)
		_ = f.Close()
		if lerr != nil {
			return fmt.Errorf("parse %s: %w", p, lerr)
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		for _, l := range links {
			if !l.IsInternal {
				continue
			}
			target, ok := resolve(root, p, l.URL)
			if ok {
				continue
			}
			broken = append(broken, Broken{Source: filepath.ToSlash(rel), URL: l.URL, Target: target})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", root, err)
	}
	return broken, nil
}

// resolve maps an internal reference to a filesystem path under root and
// reports whether the target exists.
func resolve(root, sourceFile, ref string) (string, bool) {
	// Drop query string and fragment; they do not affect the target file.
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if ref == "" {
		return sourceFile, true
	}

	var target string
	if strings.HasPrefix(ref, "/") {
		target = filepath.Join(root, filepath.FromSlash(ref))
	} else {
		target = filepath.Join(filepath.Dir(sourceFile), filepath.FromSlash(ref))
	}

	info, err := os.Stat(target)
	if err != nil {
		return target, false
	}
	if info.IsDir() {
		index := filepath.Join(target, "index.html")
		if _, err := os.Stat(index); err != nil {
			return index, false
		}
	}
	return target, true
}
