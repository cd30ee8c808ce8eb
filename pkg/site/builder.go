// Package site orchestrates static site builds: it prepares the output tree,
// copies static assets, and renders templates and Markdown pages with a
// shared set of globals and template funcs.
package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Builder holds the directory layout and the render environment for one
// build invocation. It is not safe for concurrent use; builds are
// single-threaded, sequential pipelines.
type Builder struct {
	templateDir string
	staticDir   string
	buildDir    string

	globals map[string]any
	funcs   template.FuncMap
	tmpl    *template.Template
	logger  *slog.Logger
	report  Report
}

// Option configures a Builder.
type Option func(*Builder)

// WithTemplateDir sets the template source directory.
func WithTemplateDir(dir string) Option {
	return func(b *Builder) { b.templateDir = dir }
}

// WithStaticDir sets the static asset source directory.
func WithStaticDir(dir string) Option {
	return func(b *Builder) { b.staticDir = dir }
}

// WithBuildDir sets the output directory.
func WithBuildDir(dir string) Option {
	return func(b *Builder) { b.buildDir = dir }
}

// WithLogger sets the logger; slog.Default is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// New returns a Builder with the conventional directory layout
// (src/templates, src/static, build) unless overridden by options.
func New(opts ...Option) *Builder {
	b := &Builder{
		templateDir: "src/templates",
		staticDir:   "src/static",
		buildDir:    "build",
		globals:     map[string]any{},
		logger:      slog.Default(),
		report: Report{
			ID:      uuid.New(),
			Started: time.Now(),
		},
	}
	b.funcs = b.builtinFuncs()
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// TemplateDir returns the template source directory.
func (b *Builder) TemplateDir() string { return b.templateDir }

// StaticDir returns the static asset source directory.
func (b *Builder) StaticDir() string { return b.staticDir }

// BuildDir returns the output directory.
func (b *Builder) BuildDir() string { return b.buildDir }

// EnsureBuildDirs creates the build directory and any listed subdirectories.
// It is idempotent; existing directories are left as they are.
func (b *Builder) EnsureBuildDirs(subdirs ...string) error {
	if err := os.MkdirAll(b.buildDir, 0o755); err != nil {
		return fmt.Errorf("create build dir %s: %w", b.buildDir, err)
	}
	for _, sub := range subdirs {
		dir := filepath.Join(b.buildDir, filepath.FromSlash(sub))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create build subdir %s: %w", dir, err)
		}
	}
	return nil
}

// Clean removes the build directory tree. A missing directory is a no-op.
func (b *Builder) Clean() error {
	if err := os.RemoveAll(b.buildDir); err != nil {
		return fmt.Errorf("clean build dir %s: %w", b.buildDir, err)
	}
	return nil
}

// AddGlobal registers a value visible to every subsequent render. A later
// registration with the same name overwrites the earlier one.
func (b *Builder) AddGlobal(name string, value any) {
	b.globals[name] = value
}

// AddFunc registers a template func usable in template expressions. Like
// AddGlobal, last registration wins. The parsed template set is invalidated
// so the next render sees the new func.
func (b *Builder) AddFunc(name string, fn any) {
	b.funcs[name] = fn
	b.tmpl = nil
}

// load parses the template tree on first use and caches it. Templates are
// named by their slash-separated path relative to the template dir, so
// partials in subdirectories resolve by relative name.
func (b *Builder) load() (*template.Template, error) {
	if b.tmpl != nil {
		return b.tmpl, nil
	}

	root := template.New("").Funcs(b.funcs)
	err := filepath.WalkDir(b.templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(b.templateDir, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = root.New(filepath.ToSlash(rel)).Parse(string(raw))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load templates from %s: %w", b.templateDir, err)
	}

	b.tmpl = root
	return root, nil
}
