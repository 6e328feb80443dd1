package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themesFile struct {
	Themes []themeDoc `yaml:"themes"`
}

type themeDoc struct {
	Name      string                `yaml:"name"`
	Version   string                `yaml:"version"`
	Tokens    map[string]string     `yaml:"tokens"`
	Templates map[string]string     `yaml:"templates"`
	Assets    assetsDoc             `yaml:"assets"`
	Variants  map[string]variantDoc `yaml:"variants"`
}

type variantDoc struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsDoc         `yaml:"assets"`
}

type assetsDoc struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

func (a assetsDoc) manifest() theme.Assets {
	return theme.Assets{Prefix: a.Prefix, Files: a.Files}
}

// fileSelector serves theme manifests read from a YAML file.
type fileSelector struct {
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*fileSelector)(nil)

func loadThemes(path string) (*fileSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc themesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	selector := &fileSelector{manifests: make(map[string]*theme.Manifest, len(doc.Themes))}
	for _, t := range doc.Themes {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: theme without a name", path)
		}
		if _, dup := selector.manifests[name]; dup {
			return nil, fmt.Errorf("%s: duplicate theme %q", path, name)
		}
		manifest := &theme.Manifest{
			Name:      name,
			Version:   t.Version,
			Tokens:    t.Tokens,
			Templates: t.Templates,
			Assets:    t.Assets.manifest(),
		}
		if len(t.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
			for key, variant := range t.Variants {
				manifest.Variants[key] = theme.Variant{
					Tokens:    variant.Tokens,
					Templates: variant.Templates,
					Assets:    variant.Assets.manifest(),
				}
			}
		}
		selector.manifests[name] = manifest
	}
	return selector, nil
}

// Select returns the named theme. An empty name picks the only theme when
// the file holds exactly one. A variant the manifest does not declare is an
// error.
func (s *fileSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" && len(s.manifests) == 1 {
		for only := range s.manifests {
			name = only
		}
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (have %s)", name, strings.Join(s.Names(), ", "))
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Names lists the loaded themes.
func (s *fileSelector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
