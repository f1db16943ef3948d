// Package catalog loads the register menu and answers category and price lookups.
package catalog

import (
	"mini-pos/internal/model"

	"github.com/shopspring/decimal"
)

// Catalog maps category names to item prices. It is built once and never
// modified afterwards.
type Catalog struct {
	categories []string
	prices     map[string]map[string]decimal.Decimal
	// itemOrder keeps first-seen item order per category.
	itemOrder map[string][]string
	skipped   []RowError
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		prices:    make(map[string]map[string]decimal.Decimal),
		itemOrder: make(map[string][]string),
	}
}

// Prices at or above maxPrice, or with an exponent outside
// [minPriceExponent, maxPriceExponent], are malformed.
var maxPrice = decimal.New(1, 9)

const (
	minPriceExponent = -8
	maxPriceExponent = 9
)

// checkPrice reports why a price cannot go on the menu, or nil.
func checkPrice(price decimal.Decimal) error {
	if price.Exponent() < minPriceExponent || price.Exponent() > maxPriceExponent {
		return ErrMalformedPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return ErrMalformedPrice
	}
	return nil
}

// FromItems builds a catalog from already parsed menu items. Items with a
// negative or out of range price are skipped and reported by Skipped.
func FromItems(items []model.MenuItem) *Catalog {
	c := New()
	for i, item := range items {
		if err := checkPrice(item.Price); err != nil {
			c.skipped = append(c.skipped, RowError{
				Line:     i + 1,
				Item:     item.Name,
				RawPrice: item.Price.String(),
				Err:      err,
			})
			continue
		}
		c.set(item.Category, item.Name, item.Price)
	}
	return c
}

// set records a price. A repeated (category, item) pair overwrites the earlier
// price but keeps its original position.
func (c *Catalog) set(category, name string, price decimal.Decimal) {
	byName, ok := c.prices[category]
	if !ok {
		byName = make(map[string]decimal.Decimal)
		c.prices[category] = byName
		c.categories = append(c.categories, category)
	}
	if _, exists := byName[name]; !exists {
		c.itemOrder[category] = append(c.itemOrder[category], name)
	}
	byName[name] = price
}

// Categories returns the category names in the order they first appeared.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// ItemsIn returns item name to price for a category. Unknown categories yield
// an empty map.
func (c *Catalog) ItemsIn(category string) map[string]decimal.Decimal {
	byName := c.prices[category]
	out := make(map[string]decimal.Decimal, len(byName))
	for name, price := range byName {
		out[name] = price
	}
	return out
}

// Items returns the items of a category in source order.
func (c *Catalog) Items(category string) []model.MenuItem {
	names := c.itemOrder[category]
	out := make([]model.MenuItem, 0, len(names))
	for _, name := range names {
		out = append(out, model.MenuItem{
			Category: category,
			Name:     name,
			Price:    c.prices[category][name],
		})
	}
	return out
}

// Lookup returns the price of an item within a category.
func (c *Catalog) Lookup(category, name string) (decimal.Decimal, bool) {
	price, ok := c.prices[category][name]
	return price, ok
}

// Len returns the number of distinct (category, item) pairs.
func (c *Catalog) Len() int {
	n := 0
	for _, byName := range c.prices {
		n += len(byName)
	}
	return n
}

// IsEmpty reports whether the catalog has no categories.
func (c *Catalog) IsEmpty() bool {
	return len(c.categories) == 0
}

// Skipped returns the rows rejected while the catalog was built.
func (c *Catalog) Skipped() []RowError {
	out := make([]RowError, len(c.skipped))
	copy(out, c.skipped)
	return out
}
