package repository

import (
	"context"

	"mini-pos/internal/model"
)

// MenuRepository defines the interface for stored menu access.
type MenuRepository interface {
	// ListMenuItems returns every stored item ordered by position.
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)

	// ReplaceMenu atomically swaps the stored menu for items, keeping their order.
	ReplaceMenu(ctx context.Context, items []model.MenuItem) error
}
