package site

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// CopyStaticAssets copies every file under the static source directory into
// <build>/static, preserving relative paths and overwriting existing output
// files. Paths matching any exclusion glob (against the slash-relative path
// or the base name) are skipped; a matching directory is pruned whole. A
// missing source directory is a filesystem error.
func (b *Builder) CopyStaticAssets(exclude ...string) error {
	if _, err := os.Stat(b.staticDir); err != nil {
		return fmt.Errorf("static dir %s: %w", b.staticDir, err)
	}

	dest := filepath.Join(b.buildDir, "static")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create static output dir %s: %w", dest, err)
	}

	copied := 0
	err := filepath.WalkDir(b.staticDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == b.staticDir {
			return nil
		}
		rel, err := filepath.Rel(b.staticDir, p)
		if err != nil {
			return err
		}
		if matchesAny(filepath.ToSlash(rel), d.Name(), exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(p, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	b.report.Assets += copied
	b.logger.Info("copied static assets", slog.Int("count", copied), slog.String("dest", dest))
	return nil
}

// matchesAny reports whether any exclusion glob matches the relative path or
// the base name. Malformed patterns never match.
func matchesAny(rel, base string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := path.Match(pat, rel); ok {
			return true
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
