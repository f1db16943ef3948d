package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mini-pos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func burgerView(quantity int) *model.OrderView {
	unit := decimal.RequireFromString("5.00")
	total := unit.Mul(decimal.NewFromInt(int64(quantity)))
	projection := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		projection = append(projection, "Burger")
	}
	return &model.OrderView{
		Lines: []model.OrderLine{
			{Name: "Burger", UnitPrice: unit, Quantity: quantity, Subtotal: total},
		},
		Projection: projection,
		Total:      total,
		TotalLabel: "Total: $" + total.StringFixed(2),
	}
}

func emptyView() *model.OrderView {
	return &model.OrderView{
		Lines:        []model.OrderLine{},
		DisplayLines: []string{},
		Projection:   []string{},
		Total:        decimal.Zero,
		TotalLabel:   "Total: $0.00",
	}
}

func TestOrderHandler_AddItem(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		body           string
		expectService  bool
		category       string
		item           string
		mockReturn     *model.OrderView
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			body:           `{"category":"Food","item":"Burger"}`,
			expectService:  true,
			category:       "Food",
			item:           "Burger",
			mockReturn:     burgerView(1),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown item",
			method:         http.MethodPost,
			body:           `{"category":"Food","item":"Pizza"}`,
			expectService:  true,
			category:       "Food",
			item:           "Pizza",
			mockError:      model.ErrItemNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeItemNotFound,
		},
		{
			name:           "Missing field",
			method:         http.MethodPost,
			body:           `{"category":"Food"}`,
			expectService:  true,
			category:       "Food",
			item:           "",
			mockError:      model.ErrMissingField,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Unexpected error",
			method:         http.MethodPost,
			body:           `{"category":"Food","item":"Burger"}`,
			expectService:  true,
			category:       "Food",
			item:           "Burger",
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			body:           `{invalid`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRegisterService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("AddItem", mock.Anything, tt.category, tt.item).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/order/items", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.AddItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
				assert.NotEmpty(t, resp.Message)
			} else {
				var resp model.OrderView
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Total: $5.00", resp.TotalLabel)
				assert.Equal(t, []string{"Burger"}, resp.Projection)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_RemoveAt(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		path           string
		expectService  bool
		expectView     bool
		index          int
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Valid index",
			method:         http.MethodDelete,
			path:           "/api/order/items/1",
			expectService:  true,
			index:          1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Out of range index is passed through",
			method:         http.MethodDelete,
			path:           "/api/order/items/99",
			expectService:  true,
			index:          99,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Negative index is passed through",
			method:         http.MethodDelete,
			path:           "/api/order/items/-1",
			expectService:  true,
			index:          -1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Index beyond int range leaves order unchanged",
			method:         http.MethodDelete,
			path:           "/api/order/items/99999999999999999999",
			expectView:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-numeric index",
			method:         http.MethodDelete,
			path:           "/api/order/items/abc",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidIndex,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			path:           "/api/order/items/1",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRegisterService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("RemoveAt", mock.Anything, tt.index).Return(burgerView(1))
			}
			if tt.expectView {
				mockService.On("View", mock.Anything).Return(burgerView(1))
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.RemoveAt(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_ViewAndClear(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("View", func(t *testing.T) {
		mockService := new(MockRegisterService)
		mockService.On("View", mock.Anything).Return(burgerView(2))
		handler := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		w := httptest.NewRecorder()
		handler.View(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp model.OrderView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Total.Equal(decimal.RequireFromString("10.00")))
		mockService.AssertExpectations(t)
	})

	t.Run("Clear", func(t *testing.T) {
		mockService := new(MockRegisterService)
		mockService.On("Clear", mock.Anything).Return(emptyView())
		handler := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodDelete, "/api/order", nil)
		w := httptest.NewRecorder()
		handler.Clear(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp model.OrderView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Total.IsZero())
		assert.Empty(t, resp.Lines)
		mockService.AssertExpectations(t)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		mockService := new(MockRegisterService)
		handler := NewOrderHandler(mockService, logger)

		w := httptest.NewRecorder()
		handler.View(w, httptest.NewRequest(http.MethodPut, "/api/order", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

		w = httptest.NewRecorder()
		handler.Clear(w, httptest.NewRequest(http.MethodGet, "/api/order", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		mockService.AssertNotCalled(t, "View", mock.Anything)
		mockService.AssertNotCalled(t, "Clear", mock.Anything)
	})
}

func TestOrderHandler_Checkout(t *testing.T) {
	logger := zerolog.Nop()

	receipt := &model.Receipt{
		ID:        uuid.New(),
		Lines:     burgerView(2).Lines,
		AmountDue: decimal.RequireFromString("10.00"),
		Message:   "Total amount due: $10.00",
		IssuedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	mockService := new(MockRegisterService)
	mockService.On("Checkout", mock.Anything).Return(receipt)
	handler := NewOrderHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/order/checkout", nil)
	w := httptest.NewRecorder()
	handler.Checkout(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.Receipt
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, receipt.ID, resp.ID)
	assert.Equal(t, "Total amount due: $10.00", resp.Message)
	assert.True(t, resp.AmountDue.Equal(receipt.AmountDue))
	mockService.AssertExpectations(t)

	w = httptest.NewRecorder()
	handler.Checkout(w, httptest.NewRequest(http.MethodGet, "/api/order/checkout", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
