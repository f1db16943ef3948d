package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one distinct item of the open order.
type OrderLine struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderView is the derived state a register front-end renders after every mutation.
type OrderView struct {
	Lines []OrderLine `json:"lines"`
	// DisplayLines holds one human readable summary per line.
	DisplayLines []string `json:"displayLines"`
	// Projection holds one entry per unit; removal indices address it.
	Projection []string        `json:"projection"`
	Total      decimal.Decimal `json:"total"`
	// TotalLabel is the total as shown to the operator, e.g. "Total: $11.50".
	TotalLabel string `json:"totalLabel"`
}

// AddItemRequest represents the request payload for adding an item to the order.
type AddItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

// Receipt is the amount due reported at checkout.
type Receipt struct {
	ID        uuid.UUID       `json:"id"`
	Lines     []OrderLine     `json:"lines"`
	AmountDue decimal.Decimal `json:"amountDue"`
	Message   string          `json:"message"`
	IssuedAt  time.Time       `json:"issuedAt"`
}
