package main

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitekit/pkg/config"
)

const starterConfig = `name: My Site
url: https://example.com
description: A static site
template_dir: src/templates
static_dir: src/static
content_dir: src/content
page_layout: page.html
pages:
  - index.html
exclude:
  - "*.map"
`

const starterIndex = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .site.name }}</title>
  <link rel="stylesheet" href="{{ asset "css/main.css" }}">
</head>
<body>
  <h1>{{ .site.name }}</h1>
  <p>{{ .site.description }}</p>
  <footer>&copy; {{ .current_year }}</footer>
</body>
</html>
`

const starterLayout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .page.Title }} - {{ .site.name }}</title>
  <link rel="stylesheet" href="{{ asset "css/main.css" }}">
</head>
<body>
  <article>
    <h1>{{ .page.Title }}</h1>
    {{ .page.Content }}
  </article>
  <footer>&copy; {{ .current_year }}</footer>
</body>
</html>
`

const starterCSS = `body {
  font-family: sans-serif;
  margin: 2rem auto;
  max-width: 42rem;
}
`

const starterPage = `---
title: Hello
---

Welcome to your new site.
`

func runInit(cfgPath string, force bool) error {
	fmt.Println("Initializing site project")

	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}
	if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfgPath, err)
	}
	fmt.Printf("Wrote configuration to %s\n", cfgPath)

	cfg := config.DefaultSite()
	starters := map[string]string{
		filepath.Join(cfg.TemplateDir, "index.html"):    starterIndex,
		filepath.Join(cfg.TemplateDir, "page.html"):     starterLayout,
		filepath.Join(cfg.StaticDir, "css", "main.css"): starterCSS,
		filepath.Join(cfg.ContentDir, "hello.md"):       starterPage,
	}
	for path, body := range starters {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if _, err := os.Stat(path); err == nil && !force {
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	fmt.Println("initialized successfully")
	return nil
}
