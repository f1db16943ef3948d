package model

import "github.com/shopspring/decimal"

// MenuItem is a single priced entry of the menu.
type MenuItem struct {
	Category string          `json:"category" db:"category"`
	Name     string          `json:"name" db:"item"`
	Price    decimal.Decimal `json:"price" db:"price"`
}

// MenuCategory groups the items of one category in source order.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// SkippedRow describes a menu row left out while loading.
type SkippedRow struct {
	Line     int    `json:"line"`
	Item     string `json:"item"`
	RawPrice string `json:"rawPrice"`
	Reason   string `json:"reason"`
}

// MenuResponse represents the response payload for the full menu.
type MenuResponse struct {
	Categories []MenuCategory `json:"categories"`
	Skipped    []SkippedRow   `json:"skipped,omitempty"`
}
