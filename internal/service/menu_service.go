package service

import (
	"context"

	"mini-pos/internal/catalog"
	"mini-pos/internal/model"

	"github.com/rs/zerolog"
)

// menuService implements MenuService over an immutable catalog.
type menuService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(c *catalog.Catalog, logger zerolog.Logger) MenuService {
	return &menuService{
		catalog: c,
		logger:  logger.With().Str("service", "menu").Logger(),
	}
}

func (s *menuService) Categories(ctx context.Context) []string {
	return s.catalog.Categories()
}

func (s *menuService) Items(ctx context.Context, category string) []model.MenuItem {
	items := s.catalog.Items(category)
	if len(items) == 0 {
		s.logger.Debug().Str("category", category).Msg("no items for category")
	}
	return items
}

func (s *menuService) Menu(ctx context.Context) *model.MenuResponse {
	categories := s.catalog.Categories()
	resp := &model.MenuResponse{Categories: make([]model.MenuCategory, 0, len(categories))}
	for _, name := range categories {
		resp.Categories = append(resp.Categories, model.MenuCategory{
			Name:  name,
			Items: s.catalog.Items(name),
		})
	}
	for _, rowErr := range s.catalog.Skipped() {
		reason := rowErr.Error()
		if rowErr.Err != nil {
			reason = rowErr.Err.Error()
		}
		resp.Skipped = append(resp.Skipped, model.SkippedRow{
			Line:     rowErr.Line,
			Item:     rowErr.Item,
			RawPrice: rowErr.RawPrice,
			Reason:   reason,
		})
	}
	return resp
}

func (s *menuService) Skipped(ctx context.Context) []catalog.RowError {
	return s.catalog.Skipped()
}
