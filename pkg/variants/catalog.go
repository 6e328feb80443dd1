package variants

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog stores named specs. Components look specs up by name so a theme
// can ship a catalog file that replaces the built-in styling.
type Catalog struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// NewCatalog creates a catalog seeded with the provided specs.
func NewCatalog(specs ...Spec) (*Catalog, error) {
	c := &Catalog{specs: make(map[string]Spec, len(specs))}
	for _, spec := range specs {
		if err := c.Register(spec); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register validates and stores a spec, replacing any spec with the same name.
func (c *Catalog) Register(spec Spec) error {
	name := normalizeName(spec.Name)
	if name == "" {
		return fmt.Errorf("variants: spec name is required")
	}
	spec.Name = name
	if err := spec.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.specs == nil {
		c.specs = make(map[string]Spec)
	}
	c.specs[name] = spec
	return nil
}

// Spec fetches a spec by name.
func (c *Catalog) Spec(name string) (Spec, bool) {
	if c == nil {
		return Spec{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.specs[normalizeName(name)]
	return spec, ok
}

// Names returns the sorted spec names.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.specs))
}

// Merge copies every spec from other into c, overriding same-named entries.
func (c *Catalog) Merge(other *Catalog) error {
	if other == nil {
		return nil
	}
	for _, name := range other.Names() {
		spec, _ := other.Spec(name)
		if err := c.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

type catalogDocument struct {
	Specs map[string]Spec `json:"specs" yaml:"specs"`
}

// LoadFS walks fsys and parses every JSON/YAML catalog file. Spec names must
// be unique across files. A nil fsys yields an empty catalog.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{specs: make(map[string]Spec)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("variants: read %s: %w", path, err)
		}
		doc, err := parseCatalog(data, path)
		if err != nil {
			return err
		}

		for rawName, spec := range doc.Specs {
			name := normalizeName(rawName)
			if name == "" {
				return fmt.Errorf("variants: file %s defines an empty spec name", path)
			}
			if _, exists := catalog.Spec(name); exists {
				return fmt.Errorf("variants: duplicate spec %q (file %s)", name, path)
			}
			spec.Name = name
			if err := catalog.Register(spec); err != nil {
				return fmt.Errorf("variants: file %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func parseCatalog(data []byte, path string) (catalogDocument, error) {
	var doc catalogDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("variants: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("variants: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
