package catalog

import (
	"errors"
	"testing"

	"mini-pos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsEmpty(t *testing.T) {
	c := New()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Categories())
	assert.Empty(t, c.Skipped())
}

func TestCatalog_ItemsInUnknownCategory(t *testing.T) {
	c := FromItems([]model.MenuItem{
		{Category: "Mains", Name: "Burger", Price: decimal.RequireFromString("5.00")},
	})

	items := c.ItemsIn("Desserts")

	require.NotNil(t, items)
	assert.Empty(t, items)
	assert.Empty(t, c.Items("Desserts"))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := FromItems([]model.MenuItem{
		{Category: "Mains", Name: "Burger", Price: decimal.RequireFromString("5.00")},
	})

	categories := c.Categories()
	categories[0] = "Changed"
	items := c.ItemsIn("Mains")
	items["Burger"] = decimal.RequireFromString("99")
	delete(items, "Burger")

	assert.Equal(t, []string{"Mains"}, c.Categories())
	price, ok := c.Lookup("Mains", "Burger")
	require.True(t, ok)
	assertPrice(t, "5.00", price)
}

func TestCatalog_Items(t *testing.T) {
	c := FromItems([]model.MenuItem{
		{Category: "Mains", Name: "Burger", Price: decimal.RequireFromString("5.00")},
		{Category: "Drinks", Name: "Cola", Price: decimal.RequireFromString("1.50")},
		{Category: "Mains", Name: "Fries", Price: decimal.RequireFromString("2.50")},
	})

	items := c.Items("Mains")

	require.Len(t, items, 2)
	assert.Equal(t, "Mains", items[0].Category)
	assert.Equal(t, "Burger", items[0].Name)
	assertPrice(t, "5.00", items[0].Price)
	assert.Equal(t, "Fries", items[1].Name)
	assert.Equal(t, []string{"Mains", "Drinks"}, c.Categories())
}

func TestFromItems_SkipsNegativePrices(t *testing.T) {
	c := FromItems([]model.MenuItem{
		{Category: "Mains", Name: "Burger", Price: decimal.RequireFromString("5.00")},
		{Category: "Mains", Name: "Refund", Price: decimal.RequireFromString("-2.00")},
	})

	assert.Equal(t, 1, c.Len())
	_, ok := c.Lookup("Mains", "Refund")
	assert.False(t, ok)
	require.Len(t, c.Skipped(), 1)
	assert.ErrorIs(t, c.Skipped()[0], ErrNegativePrice)
}

func TestCatalog_Lookup(t *testing.T) {
	c := FromItems([]model.MenuItem{
		{Category: "Mains", Name: "Burger", Price: decimal.RequireFromString("5.00")},
	})

	tests := []struct {
		name     string
		category string
		item     string
		found    bool
	}{
		{name: "Known item", category: "Mains", item: "Burger", found: true},
		{name: "Unknown item", category: "Mains", item: "Pizza", found: false},
		{name: "Wrong category", category: "Drinks", item: "Burger", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.Lookup(tt.category, tt.item)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestFromItems_SkipsOutOfRangePrices(t *testing.T) {
	c := FromItems([]model.MenuItem{
		{Category: "Mains", Name: "Burger", Price: decimal.RequireFromString("5.00")},
		{Category: "Mains", Name: "Big", Price: decimal.New(1, 50)},
		{Category: "Mains", Name: "Refund", Price: decimal.RequireFromString("-1")},
	})

	assert.Equal(t, 1, c.Len())
	skipped := c.Skipped()
	require.Len(t, skipped, 2)
	assert.True(t, errors.Is(skipped[0], ErrMalformedPrice))
	assert.True(t, errors.Is(skipped[1], ErrNegativePrice))
}
