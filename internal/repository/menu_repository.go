package repository

import (
	"context"
	"fmt"

	"mini-pos/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Schema creates the menu table.
const Schema = `
	CREATE TABLE IF NOT EXISTS menu_items (
		category TEXT NOT NULL,
		item TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		position INTEGER NOT NULL,
		PRIMARY KEY (category, item)
	);
	CREATE INDEX IF NOT EXISTS idx_menu_items_position ON menu_items(position);
`

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// ListMenuItems returns every stored item ordered by position.
func (r *menuRepository) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT category, item, price::text
		FROM menu_items
		ORDER BY position, category, item
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var (
			item     model.MenuItem
			rawPrice string
		)
		if err := rows.Scan(&item.Category, &item.Name, &rawPrice); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.Price, err = decimal.NewFromString(rawPrice)
		if err != nil {
			r.logger.Error().Err(err).Str("item", item.Name).Str("raw_price", rawPrice).Msg("invalid stored price")
			return nil, fmt.Errorf("failed to parse price of %s: %w", item.Name, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	r.logger.Debug().Int("count", len(items)).Msg("retrieved menu items")

	return items, nil
}

// ReplaceMenu atomically swaps the stored menu for items, keeping their order.
// A repeated (category, item) pair keeps its first position and its last price.
func (r *menuRepository) ReplaceMenu(ctx context.Context, items []model.MenuItem) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM menu_items`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear menu items")
		return fmt.Errorf("failed to clear menu items: %w", err)
	}

	query := `
		INSERT INTO menu_items (category, item, price, position)
		VALUES ($1, $2, $3::numeric, $4)
		ON CONFLICT (category, item) DO UPDATE SET price = EXCLUDED.price
	`

	batch := &pgx.Batch{}
	for i, item := range items {
		batch.Queue(query, item.Category, item.Name, item.Price.String(), i)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range items {
		if _, err = results.Exec(); err != nil {
			_ = results.Close()
			r.logger.Error().
				Err(err).
				Str("category", items[i].Category).
				Str("item", items[i].Name).
				Msg("failed to insert menu item")
			return fmt.Errorf("failed to insert menu item %s: %w", items[i].Name, err)
		}
	}
	if err = results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit menu: %w", err)
	}

	r.logger.Info().Int("count", len(items)).Msg("menu replaced")

	return nil
}
