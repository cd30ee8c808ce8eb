package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"git.home.luguber.info/inful/sitekit/pkg/config"
	"git.home.luguber.info/inful/sitekit/pkg/fileutil"
	"git.home.luguber.info/inful/sitekit/pkg/linkcheck"
	"git.home.luguber.info/inful/sitekit/pkg/site"
	"git.home.luguber.info/inful/sitekit/pkg/watch"
)

// loadSiteConfig reads the site file, falling back to env-only configuration
// when the file does not exist.
func loadSiteConfig(cfgPath string) (config.Site, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		slog.Debug("no site config file, using environment", "path", cfgPath)
		return config.SiteFromEnv(), nil
	}
	return config.LoadSite(cfgPath)
}

func runBuild(cfgPath, output string) error {
	if config.LoadEnv() {
		slog.Debug("loaded environment from dotenv file")
	}

	cfg, err := loadSiteConfig(cfgPath)
	if err != nil {
		return err
	}

	b := site.New(
		site.WithTemplateDir(cfg.TemplateDir),
		site.WithStaticDir(cfg.StaticDir),
		site.WithBuildDir(output),
	)

	if err := b.EnsureBuildDirs(); err != nil {
		return err
	}
	if err := b.CopyStaticAssets(cfg.Exclude...); err != nil {
		return err
	}

	b.AddGlobal("site", cfg.ToMap())
	b.AddGlobal("current_year", fileutil.CurrentYear())

	if err := renderContent(b, cfg); err != nil {
		return err
	}

	pages := make([]site.Page, 0, len(cfg.Pages))
	for _, p := range cfg.Pages {
		pages = append(pages, site.Page{Template: p})
	}
	if err := b.RenderPages(pages, nil); err != nil {
		return err
	}

	rep := b.Report()
	slog.Info("Site built",
		"build_id", rep.ID,
		"pages", rep.Pages,
		"assets", rep.Assets,
		"duration", rep.Duration.Round(time.Millisecond))
	return nil
}

// renderContent renders every Markdown file under the content dir through
// the configured page layout, mirroring the source tree in the output.
func renderContent(b *site.Builder, cfg config.Site) error {
	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(cfg.ContentDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(cfg.ContentDir, p)
		if err != nil {
			return err
		}
		output := filepath.ToSlash(strings.TrimSuffix(rel, ".md") + ".html")
		return b.RenderMarkdown(p, cfg.PageLayout, output, nil)
	})
}

func runClean(output string) error {
	b := site.New(site.WithBuildDir(output))
	if err := b.Clean(); err != nil {
		return err
	}
	slog.Info("Removed build output", "dir", output)
	return nil
}

func runCheck(dir string) error {
	broken, err := linkcheck.VerifyDir(dir)
	if err != nil {
		return err
	}
	for _, b := range broken {
		slog.Error("Broken link", "source", b.Source, "url", b.URL, "target", b.Target)
	}
	if len(broken) > 0 {
		return fmt.Errorf("%d broken internal links", len(broken))
	}
	slog.Info("All internal links resolve", "dir", dir)
	return nil
}

func runWatch(cfgPath, output string, debounce time.Duration) error {
	if err := runBuild(cfgPath, output); err != nil {
		return err
	}

	cfg, err := loadSiteConfig(cfgPath)
	if err != nil {
		return err
	}

	rebuild := func() {
		if err := runBuild(cfgPath, output); err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
	}

	dirs := []string{cfg.TemplateDir, cfg.StaticDir, cfg.ContentDir}
	w, err := watch.New(dirs, debounce, rebuild, slog.Default())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Watching for changes", "dirs", dirs)
	return w.Run(ctx)
}
