// Package catalog holds the fixed allow-list of price identifiers the
// checkout endpoint accepts. The table is parsed once at startup and is
// read-only afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
)

//go:embed catalog.toml
var embedded []byte

type file struct {
	Version string               `toml:"version"`
	Items   []models.CatalogItem `toml:"items"`
}

type Catalog struct {
	version string
	items   []models.CatalogItem
	byPrice map[string]models.CatalogItem
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads the catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if f.Version == "" {
		return nil, fmt.Errorf("catalog version is required")
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("catalog %s has no items", f.Version)
	}

	c := &Catalog{
		version: f.Version,
		items:   make([]models.CatalogItem, 0, len(f.Items)),
		byPrice: make(map[string]models.CatalogItem, len(f.Items)),
	}
	for _, item := range f.Items {
		if item.PriceID == "" {
			return nil, fmt.Errorf("catalog item %q has no price_id", item.Key)
		}
		if _, dup := c.byPrice[item.PriceID]; dup {
			return nil, fmt.Errorf("duplicate price_id %q", item.PriceID)
		}
		switch item.Kind {
		case models.ItemKindPlan, models.ItemKindPhysicalJournal:
		default:
			return nil, fmt.Errorf("catalog item %q has unknown kind %q", item.Key, item.Kind)
		}
		c.byPrice[item.PriceID] = item
		c.items = append(c.items, item)
	}
	return c, nil
}

func (c *Catalog) Version() string {
	return c.version
}

// Allowed reports whether priceID is on the allow-list.
func (c *Catalog) Allowed(priceID string) bool {
	_, ok := c.byPrice[priceID]
	return ok
}

// Items returns a copy of the catalog entries in file order.
func (c *Catalog) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsOfKind filters Items by kind.
func (c *Catalog) ItemsOfKind(kind string) []models.CatalogItem {
	var out []models.CatalogItem
	for _, item := range c.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}
