package catalog

import (
	"context"

	"mini-pos/internal/model"

	"github.com/rs/zerolog"
)

// ItemSource lists stored menu items in display order.
type ItemSource interface {
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
}

type repositoryLoader struct {
	items  ItemSource
	logger zerolog.Logger
}

// NewRepositoryLoader creates a loader that builds the catalog from a database
// table instead of a file. The source name is only used in logs.
func NewRepositoryLoader(items ItemSource, logger zerolog.Logger) Loader {
	return &repositoryLoader{
		items:  items,
		logger: logger.With().Str("component", "menu-repository-loader").Logger(),
	}
}

func (l *repositoryLoader) Load(ctx context.Context, source string) (*Catalog, error) {
	items, err := l.items.ListMenuItems(ctx)
	if err != nil {
		l.logger.Error().Err(err).Str("source", source).Msg("failed to list menu items")
		return nil, &SourceError{Source: source, Err: err}
	}

	c := FromItems(items)
	for _, rowErr := range c.skipped {
		l.logger.Warn().
			Str("item", rowErr.Item).
			Str("raw_price", rowErr.RawPrice).
			Err(rowErr.Err).
			Msg("invalid stored menu item, skipping")
	}

	l.logger.Info().
		Str("source", source).
		Int("categories", len(c.categories)).
		Int("items", c.Len()).
		Msg("menu loaded from database")

	return c, nil
}
