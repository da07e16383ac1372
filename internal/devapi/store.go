package devapi

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ziadkadry99/smoothie-menu/internal/db"
)

// Store provides catalog persistence.
type Store struct {
	db *db.DB
}

// NewStore creates a new catalog store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// CreateCategory inserts a category at the given display position.
func (s *Store) CreateCategory(ctx context.Context, c *Category, position int) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, is_active, position) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, nullBool(c.IsActive), position,
	)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

// CreateSmoothie inserts an item at the given position within its category.
func (s *Store) CreateSmoothie(ctx context.Context, sm *Smoothie, position int) error {
	if sm.ID == "" {
		sm.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO smoothies (id, category_id, name, description, image, price, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sm.ID, sm.CategoryID, sm.Name, nullString(sm.Description), nullString(sm.Image),
		nullFloat(sm.Price), position,
	)
	if err != nil {
		return fmt.Errorf("creating smoothie: %w", err)
	}
	return nil
}

// ListCategories returns all categories in display order, inactive ones
// included.
func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, is_active FROM categories ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var result []Category
	for rows.Next() {
		var (
			c      Category
			active sql.NullBool
		)
		if err := rows.Scan(&c.ID, &c.Name, &active); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		if active.Valid {
			c.IsActive = &active.Bool
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// ListSmoothies returns the items of one category in display order. An
// empty categoryID lists every item.
func (s *Store) ListSmoothies(ctx context.Context, categoryID string) ([]Smoothie, error) {
	query := `SELECT id, category_id, name, description, image, price FROM smoothies`
	var args []any
	if categoryID != "" {
		query += ` WHERE category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY position, name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing smoothies: %w", err)
	}
	defer rows.Close()

	var result []Smoothie
	for rows.Next() {
		var (
			sm          Smoothie
			description sql.NullString
			image       sql.NullString
			price       sql.NullFloat64
		)
		if err := rows.Scan(&sm.ID, &sm.CategoryID, &sm.Name, &description, &image, &price); err != nil {
			return nil, fmt.Errorf("scanning smoothie: %w", err)
		}
		if description.Valid {
			sm.Description = &description.String
		}
		if image.Valid {
			sm.Image = &image.String
		}
		if price.Valid {
			sm.Price = &price.Float64
		}
		result = append(result, sm)
	}
	return result, rows.Err()
}

// Reset removes every category and item.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM smoothies`); err != nil {
		return fmt.Errorf("clearing smoothies: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}
	return nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
