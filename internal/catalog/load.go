package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type document struct {
	Page  PageTexts         `yaml:"page"`
	Parts []sectionDocument `yaml:"parts"`
}

type sectionDocument struct {
	Part     Part            `yaml:"part"`
	Panel    `yaml:",inline"`
	Packages []PackageRecord `yaml:"packages"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(bytes.NewReader(embeddedCatalog))
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads and validates a catalog file. An empty path yields the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", path, err)
	}
	defer f.Close() // nolint:errcheck

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and validates it. Unknown keys are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		page:     doc.Page,
		sections: make(map[Part]section, len(doc.Parts)),
	}
	for _, s := range doc.Parts {
		c.sections[s.Part] = section{panel: s.Panel, packages: s.Packages}
	}
	return c, nil
}
