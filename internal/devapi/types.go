// Package devapi serves a local catalog API with the same shape as the
// production menu backend, backed by SQLite and seeded from YAML fixtures.
package devapi

// Category is a stored menu category.
type Category struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	IsActive  *bool      `yaml:"is_active,omitempty"`
	Smoothies []Smoothie `yaml:"smoothies,omitempty"`
}

// Smoothie is a stored menu item. Optional fields are nil when unset.
type Smoothie struct {
	ID          string   `yaml:"id"`
	CategoryID  string   `yaml:"-"`
	Name        string   `yaml:"name"`
	Description *string  `yaml:"description,omitempty"`
	Image       *string  `yaml:"image,omitempty"`
	Price       *float64 `yaml:"price,omitempty"`
}

// Fixtures is the on-disk seed format.
type Fixtures struct {
	Categories []Category `yaml:"categories"`
}
