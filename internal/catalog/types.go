// Package catalog reads categories and items from the upstream menu API.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Category is a named grouping of items, shown as one tab.
type Category struct {
	ID       string
	Name     string
	IsActive *bool
}

// Active reports whether the category should be shown. Only an explicit
// false hides a category.
func (c Category) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

// Item is a purchasable product shown within a category's pane.
type Item struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       *float64
}

type categoryWire struct {
	ID       json.RawMessage `json:"id"`
	MongoID  json.RawMessage `json:"_id"`
	Name     string          `json:"name"`
	IsActive *bool           `json:"isActive"`
}

// UnmarshalJSON accepts either `id` or `_id`, as a number or a string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var w categoryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id, err := pickID(w.ID, w.MongoID)
	if err != nil {
		return fmt.Errorf("category %q: %w", w.Name, err)
	}
	*c = Category{ID: id, Name: w.Name, IsActive: w.IsActive}
	return nil
}

type itemWire struct {
	ID          json.RawMessage `json:"id"`
	MongoID     json.RawMessage `json:"_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Image       *string         `json:"image"`
	Price       *float64        `json:"price"`
}

// UnmarshalJSON accepts either `id` or `_id`, as a number or a string.
func (it *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id, err := pickID(w.ID, w.MongoID)
	if err != nil {
		return fmt.Errorf("item %q: %w", w.Name, err)
	}
	*it = Item{ID: id, Name: w.Name, Price: w.Price}
	if w.Description != nil {
		it.Description = *w.Description
	}
	if w.Image != nil {
		it.Image = *w.Image
	}
	return nil
}

// pickID returns the primary identifier when it is set and non-zero,
// otherwise the Mongo-style one. Both missing yields "".
func pickID(primary, fallback json.RawMessage) (string, error) {
	id, err := decodeID(primary)
	if err != nil {
		return "", fmt.Errorf("decoding id: %w", err)
	}
	if id != "" {
		return id, nil
	}
	id, err = decodeID(fallback)
	if err != nil {
		return "", fmt.Errorf("decoding _id: %w", err)
	}
	return id, nil
}

// decodeID normalises a JSON identifier to a string. Zero, empty and null
// values count as unset.
func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case '{':
		// Extended JSON: {"$oid": "..."}
		var oid struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(raw, &oid); err != nil {
			return "", err
		}
		return oid.OID, nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", err
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			return "", nil
		}
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		return n.String(), nil
	}
}
