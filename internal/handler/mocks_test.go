package handler

import (
	"context"

	"mini-pos/internal/catalog"
	"mini-pos/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Categories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockMenuService) Items(ctx context.Context, category string) []model.MenuItem {
	args := m.Called(ctx, category)
	return args.Get(0).([]model.MenuItem)
}

func (m *MockMenuService) Menu(ctx context.Context) *model.MenuResponse {
	args := m.Called(ctx)
	return args.Get(0).(*model.MenuResponse)
}

func (m *MockMenuService) Skipped(ctx context.Context) []catalog.RowError {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.RowError)
}

// MockRegisterService is a mock implementation of RegisterService.
type MockRegisterService struct {
	mock.Mock
}

func (m *MockRegisterService) AddItem(ctx context.Context, category, item string) (*model.OrderView, error) {
	args := m.Called(ctx, category, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderView), args.Error(1)
}

func (m *MockRegisterService) RemoveAt(ctx context.Context, index int) *model.OrderView {
	args := m.Called(ctx, index)
	return args.Get(0).(*model.OrderView)
}

func (m *MockRegisterService) Clear(ctx context.Context) *model.OrderView {
	args := m.Called(ctx)
	return args.Get(0).(*model.OrderView)
}

func (m *MockRegisterService) View(ctx context.Context) *model.OrderView {
	args := m.Called(ctx)
	return args.Get(0).(*model.OrderView)
}

func (m *MockRegisterService) Checkout(ctx context.Context) *model.Receipt {
	args := m.Called(ctx)
	return args.Get(0).(*model.Receipt)
}
