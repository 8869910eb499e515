// Package seed loads catalog documents (YAML or JSON) and imports them into
// the store. A demo catalog is embedded for fresh databases.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/johnwards/propcat/internal/domain"
	"github.com/johnwards/propcat/internal/store"
)

//go:embed demo.yaml
var demoCatalog []byte

// Catalog is the on-disk shape of a catalog document.
type Catalog struct {
	Properties []domain.Property  `yaml:"properties"`
	Locations  []domain.Location  `yaml:"locations"`
	Developers []domain.Developer `yaml:"developers"`
	Agents     []domain.Agent     `yaml:"agents"`
}

// Result counts the records written by Import.
type Result struct {
	Properties int `json:"properties"`
	Locations  int `json:"locations"`
	Developers int `json:"developers"`
	Agents     int `json:"agents"`
}

// Parse decodes a catalog document. Unknown keys are rejected so typos in
// field names do not silently drop data.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

// LoadFile parses the catalog document at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Demo returns the embedded demo catalog.
func Demo() (*Catalog, error) {
	return Parse(bytes.NewReader(demoCatalog))
}

// Import upserts every record of c into s, filling record defaults first.
// Records are written in document order, which becomes catalog order for
// new ids.
func Import(ctx context.Context, s *store.Store, c *Catalog) (Result, error) {
	var res Result
	for i := range c.Properties {
		if err := s.Properties.Upsert(ctx, domain.NewProperty(c.Properties[i])); err != nil {
			return res, fmt.Errorf("import properties: %w", err)
		}
		res.Properties++
	}
	for i := range c.Locations {
		if err := s.Locations.Upsert(ctx, domain.NewLocation(c.Locations[i])); err != nil {
			return res, fmt.Errorf("import locations: %w", err)
		}
		res.Locations++
	}
	for i := range c.Developers {
		if err := s.Developers.Upsert(ctx, domain.NewDeveloper(c.Developers[i])); err != nil {
			return res, fmt.Errorf("import developers: %w", err)
		}
		res.Developers++
	}
	for i := range c.Agents {
		if err := s.Agents.Upsert(ctx, domain.NewAgent(c.Agents[i])); err != nil {
			return res, fmt.Errorf("import agents: %w", err)
		}
		res.Agents++
	}
	return res, nil
}

// Seed imports the demo catalog if the store holds no listings yet. It is
// idempotent: a populated store is left untouched.
func Seed(ctx context.Context, s *store.Store) error {
	empty, err := s.Empty(ctx)
	if err != nil {
		return fmt.Errorf("check store: %w", err)
	}
	if !empty {
		return nil
	}

	c, err := Demo()
	if err != nil {
		return fmt.Errorf("parse demo catalog: %w", err)
	}
	if _, err := Import(ctx, s, c); err != nil {
		return fmt.Errorf("seed demo catalog: %w", err)
	}
	return nil
}
