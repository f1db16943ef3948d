package service

import (
	"context"

	"mini-pos/internal/catalog"
	"mini-pos/internal/model"
)

// MenuService defines read operations on the loaded menu.
type MenuService interface {
	// Categories returns the category names in menu order.
	Categories(ctx context.Context) []string

	// Items returns the items of a category in menu order; empty when unknown.
	Items(ctx context.Context, category string) []model.MenuItem

	// Menu returns every category with its items.
	Menu(ctx context.Context) *model.MenuResponse

	// Skipped returns the menu rows rejected while loading.
	Skipped(ctx context.Context) []catalog.RowError
}

// RegisterService defines the operations on the single open order.
type RegisterService interface {
	// AddItem adds one unit of a menu item at its catalog price.
	AddItem(ctx context.Context, category, item string) (*model.OrderView, error)

	// RemoveAt removes one unit at a projection index. Invalid indices are ignored.
	RemoveAt(ctx context.Context, index int) *model.OrderView

	// Clear empties the order.
	Clear(ctx context.Context) *model.OrderView

	// View returns the current order.
	View(ctx context.Context) *model.OrderView

	// Checkout reports the amount due without changing the order.
	Checkout(ctx context.Context) *model.Receipt
}
