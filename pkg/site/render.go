package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"git.home.luguber.info/inful/sitekit/pkg/content"
)

// Page pairs a template name with its output path under the build dir. An
// empty Output defaults to the template name.
type Page struct {
	Template string
	Output   string
}

// RenderTemplateString renders the named template against the merged
// global+local context and returns the result. Per-call context keys shadow
// globals of the same name.
func (b *Builder) RenderTemplateString(name string, data map[string]any) ([]byte, error) {
	tmpl, err := b.load()
	if err != nil {
		return nil, err
	}

	ctx := make(map[string]any, len(b.globals)+len(data))
	for k, v := range b.globals {
		ctx[k] = v
	}
	for k, v := range data {
		ctx[k] = v
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// RenderTemplate renders one template and writes the result under the build
// directory. The write is atomic so a failed render never leaves a truncated
// page behind.
func (b *Builder) RenderTemplate(name string, data map[string]any, output string) error {
	rendered, err := b.RenderTemplateString(name, data)
	if err != nil {
		return err
	}

	if output == "" {
		output = name
	}
	outPath := filepath.Join(b.buildDir, filepath.FromSlash(output))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir for %s: %w", outPath, err)
	}
	if err := atomic.WriteFile(outPath, bytes.NewReader(rendered)); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	b.report.Pages++
	b.logger.Debug("rendered page", "template", name, "output", output)
	return nil
}

// RenderPages renders a sequence of pages with one shared context,
// sequentially, stopping at the first failure.
func (b *Builder) RenderPages(pages []Page, data map[string]any) error {
	for _, p := range pages {
		if err := b.RenderTemplate(p.Template, data, p.Output); err != nil {
			return err
		}
	}
	return nil
}

// RenderMarkdown loads a Markdown source file and renders it through an HTML
// layout template. The loaded page is exposed to the layout as "page"; an
// empty output defaults to "<slug>.html".
func (b *Builder) RenderMarkdown(srcPath, layout, output string, data map[string]any) error {
	page, err := content.LoadPage(srcPath)
	if err != nil {
		return err
	}

	ctx := make(map[string]any, len(data)+1)
	for k, v := range data {
		ctx[k] = v
	}
	ctx["page"] = page

	if output == "" {
		output = page.Slug + ".html"
	}
	return b.RenderTemplate(layout, ctx, output)
}
