package site

import (
	"fmt"
	"html/template"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/sitekit/pkg/fileutil"
)

// builtinFuncs assembles the default template func set. Registrations via
// AddFunc can shadow any of these.
func (b *Builder) builtinFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"titlecase":  titlecase,
		"slugify":    Slugify,
		"formatDate": fileutil.FormatDate,
		"year":       fileutil.CurrentYear,
		"asset":      b.assetURL,
	}
}

// assetURL returns a cache-busting URL for a static asset: the asset's
// output path with a short content hash of the source file as a version
// query parameter.
func (b *Builder) assetURL(rel string) (string, error) {
	src := filepath.Join(b.staticDir, filepath.FromSlash(rel))
	hash, err := fileutil.ShortHash(src, 0)
	if err != nil {
		return "", fmt.Errorf("asset %s: %w", rel, err)
	}
	return path.Join("static", rel) + "?v=" + hash, nil
}

var titleCaser = cases.Title(language.English)

func titlecase(s string) string {
	return titleCaser.String(s)
}

// stripMarks removes combining marks after canonical decomposition, so
// accented characters slugify to their ASCII base.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases s, folds accented characters to ASCII and collapses
// every other non-alphanumeric run into a single hyphen.
func Slugify(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var sb strings.Builder
	pendingDash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			pendingDash = false
		default:
			pendingDash = true
		}
	}
	return sb.String()
}
