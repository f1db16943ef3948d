package service

import (
	"context"
	"sync"
	"time"

	"mini-pos/internal/catalog"
	"mini-pos/internal/ledger"
	"mini-pos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// registerService implements RegisterService. It owns the only ledger.
type registerService struct {
	// mu serialises mutations arriving from concurrent requests.
	mu      sync.Mutex
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	now     func() time.Time
	logger  zerolog.Logger
}

// NewRegisterService creates a register with an empty order.
func NewRegisterService(c *catalog.Catalog, logger zerolog.Logger) RegisterService {
	return &registerService{
		catalog: c,
		ledger:  ledger.New(),
		now:     time.Now,
		logger:  logger.With().Str("service", "register").Logger(),
	}
}

// AddItem adds one unit of a menu item at its catalog price.
func (s *registerService) AddItem(ctx context.Context, category, item string) (*model.OrderView, error) {
	if category == "" || item == "" {
		return nil, model.ErrMissingField
	}

	price, ok := s.catalog.Lookup(category, item)
	if !ok {
		s.logger.Warn().
			Str("category", category).
			Str("item", item).
			Msg("item not on menu")
		return nil, model.ErrItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.AddItem(item, price)

	s.logger.Info().
		Str("item", item).
		Int("quantity", s.ledger.Quantity(item)).
		Str("total", s.ledger.Total().StringFixed(2)).
		Msg("item added")

	return s.view(), nil
}

// RemoveAt removes one unit at a projection index. Invalid indices are ignored.
func (s *registerService) RemoveAt(ctx context.Context, index int) *model.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, removed := s.ledger.RemoveAt(index)
	if !removed {
		s.logger.Debug().Int("index", index).Msg("nothing to remove at index")
		return s.view()
	}

	s.logger.Info().
		Str("item", name).
		Int("index", index).
		Str("total", s.ledger.Total().StringFixed(2)).
		Msg("removed one item")

	return s.view()
}

// Clear empties the order.
func (s *registerService) Clear(ctx context.Context) *model.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Clear()
	s.logger.Info().Msg("order cleared")

	return s.view()
}

// View returns the current order.
func (s *registerService) View(ctx context.Context) *model.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view()
}

// Checkout reports the amount due without changing the order.
func (s *registerService) Checkout(ctx context.Context) *model.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := s.ledger.Checkout()
	receipt := &model.Receipt{
		ID:        uuid.New(),
		Lines:     s.ledger.Lines(),
		AmountDue: due,
		Message:   "Total amount due: " + ledger.FormatAmount(due),
		IssuedAt:  s.now().UTC(),
	}

	s.logger.Info().
		Str("receipt_id", receipt.ID.String()).
		Int("line_count", len(receipt.Lines)).
		Str("amount_due", ledger.FormatAmount(receipt.AmountDue)).
		Msg("checkout")

	return receipt
}

// view must be called with mu held.
func (s *registerService) view() *model.OrderView {
	v := s.ledger.View()
	return &v
}
