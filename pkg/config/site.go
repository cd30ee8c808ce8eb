package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Site is the statically declared set of site settings. Identity fields feed
// the template context via ToMap; the remaining fields steer the build
// pipeline and stay out of rendered pages.
type Site struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	BasePath    string `yaml:"base_path"`

	TemplateDir string   `yaml:"template_dir"`
	StaticDir   string   `yaml:"static_dir"`
	ContentDir  string   `yaml:"content_dir"`
	PageLayout  string   `yaml:"page_layout"`
	Pages       []string `yaml:"pages"`
	Exclude     []string `yaml:"exclude"`
}

// DefaultSite returns a Site with the conventional directory layout.
func DefaultSite() Site {
	return Site{
		Name:        "My Site",
		URL:         "https://example.com",
		Description: "A static site",
		TemplateDir: "src/templates",
		StaticDir:   "src/static",
		ContentDir:  "src/content",
		PageLayout:  "page.html",
		Pages:       []string{"index.html"},
	}
}

// SiteFromEnv builds a Site from SITE_* environment variables layered over
// the defaults.
func SiteFromEnv() Site {
	s := DefaultSite()
	s.applyEnv()
	return s
}

// LoadSite reads a YAML site file and layers SITE_* environment variables on
// top, so operators can override a checked-in file without editing it.
func LoadSite(path string) (Site, error) {
	s := DefaultSite()

	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read site config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse site config %s: %w", path, err)
	}

	s.applyEnv()
	return s, nil
}

func (s *Site) applyEnv() {
	s.Name = Get("SITE_NAME", s.Name)
	s.URL = Get("SITE_URL", s.URL)
	s.Description = Get("SITE_DESCRIPTION", s.Description)
	s.Author = Get("SITE_AUTHOR", s.Author)
	s.BasePath = Get("SITE_BASE_PATH", s.BasePath)
}

// ToMap returns the identity settings as a template context mapping.
func (s Site) ToMap() map[string]any {
	return map[string]any{
		"name":        s.Name,
		"url":         s.URL,
		"description": s.Description,
		"author":      s.Author,
		"base_path":   s.BasePath,
	}
}
