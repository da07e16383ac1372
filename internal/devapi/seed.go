package devapi

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// LoadFixtures reads seed data from path. An empty path returns the
// built-in sample menu.
func LoadFixtures(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading fixtures: %w", err)
		}
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes YAML seed data.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	for i, c := range fx.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category %d: name is required", i)
		}
		for j, sm := range c.Smoothies {
			if sm.Name == "" {
				return nil, fmt.Errorf("category %q smoothie %d: name is required", c.Name, j)
			}
		}
	}
	return &fx, nil
}

// Seed replaces the store contents with fx. Categories and items keep
// their fixture order; missing IDs are generated.
func Seed(ctx context.Context, store *Store, fx *Fixtures) error {
	if err := store.Reset(ctx); err != nil {
		return err
	}
	for i := range fx.Categories {
		c := fx.Categories[i]
		if err := store.CreateCategory(ctx, &c, i); err != nil {
			return err
		}
		for j := range c.Smoothies {
			sm := c.Smoothies[j]
			sm.CategoryID = c.ID
			if err := store.CreateSmoothie(ctx, &sm, j); err != nil {
				return err
			}
		}
	}
	return nil
}
