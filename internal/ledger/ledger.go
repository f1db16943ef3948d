// Package ledger holds the open order of a register.
//
// A Ledger keeps one line per distinct item, remembers the order in which
// items were first added and rebuilds its derived state (the unit projection
// and the total) after every mutation. It is not safe for concurrent use.
package ledger

import (
	"fmt"

	"mini-pos/internal/model"

	"github.com/shopspring/decimal"
)

type line struct {
	unitPrice decimal.Decimal
	quantity  int
}

// Ledger is the in-memory current order.
type Ledger struct {
	lines map[string]*line
	// order lists item names by first add; it always mirrors the keys of lines.
	order      []string
	projection []string
	total      decimal.Decimal
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		lines: make(map[string]*line),
		total: decimal.Zero,
	}
}

// AddItem adds one unit of name. A new line takes unitPrice; an existing line
// keeps the price it was first added at.
func (l *Ledger) AddItem(name string, unitPrice decimal.Decimal) {
	if ln, ok := l.lines[name]; ok {
		ln.quantity++
	} else {
		l.lines[name] = &line{unitPrice: unitPrice, quantity: 1}
		l.order = append(l.order, name)
	}
	l.rebuild()
}

// RemoveAt removes one unit of the item at index in the projection. An index
// out of range leaves the ledger untouched and reports false.
func (l *Ledger) RemoveAt(index int) (string, bool) {
	if index < 0 || index >= len(l.projection) {
		return "", false
	}

	name := l.projection[index]
	ln := l.lines[name]
	ln.quantity--
	if ln.quantity == 0 {
		delete(l.lines, name)
		for i, n := range l.order {
			if n == name {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
	l.rebuild()
	return name, true
}

// Clear discards every line.
func (l *Ledger) Clear() {
	l.lines = make(map[string]*line)
	l.order = nil
	l.rebuild()
}

// rebuild recomputes the projection and the total from the lines.
func (l *Ledger) rebuild() {
	projection := make([]string, 0, len(l.projection)+1)
	total := decimal.Zero
	for _, name := range l.order {
		ln := l.lines[name]
		for range ln.quantity {
			projection = append(projection, name)
		}
		total = total.Add(ln.unitPrice.Mul(decimal.NewFromInt(int64(ln.quantity))))
	}
	l.projection = projection
	l.total = total
}

// Total returns the sum of unit price times quantity over all lines.
func (l *Ledger) Total() decimal.Decimal {
	return l.total
}

// Checkout reports the amount due. It does not clear the ledger.
func (l *Ledger) Checkout() decimal.Decimal {
	return l.total
}

// Projection returns one entry per unit, grouped by line in first-added order.
func (l *Ledger) Projection() []string {
	out := make([]string, len(l.projection))
	copy(out, l.projection)
	return out
}

// Lines returns the distinct lines in first-added order.
func (l *Ledger) Lines() []model.OrderLine {
	out := make([]model.OrderLine, 0, len(l.order))
	for _, name := range l.order {
		ln := l.lines[name]
		out = append(out, model.OrderLine{
			Name:      name,
			UnitPrice: ln.unitPrice,
			Quantity:  ln.quantity,
			Subtotal:  ln.unitPrice.Mul(decimal.NewFromInt(int64(ln.quantity))),
		})
	}
	return out
}

// DisplayLines returns one summary per line, e.g. "Burger x 2 - $10.00".
func (l *Ledger) DisplayLines() []string {
	lines := l.Lines()
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = fmt.Sprintf("%s x %d - %s", ln.Name, ln.Quantity, FormatAmount(ln.Subtotal))
	}
	return out
}

// Quantity returns how many units of name are on the order.
func (l *Ledger) Quantity(name string) int {
	if ln, ok := l.lines[name]; ok {
		return ln.quantity
	}
	return 0
}

// IsEmpty reports whether the order has no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.order) == 0
}

// View returns a snapshot of the derived state.
func (l *Ledger) View() model.OrderView {
	return model.OrderView{
		Lines:        l.Lines(),
		DisplayLines: l.DisplayLines(),
		Projection:   l.Projection(),
		Total:        l.total,
		TotalLabel:   "Total: " + FormatAmount(l.total),
	}
}

// FormatAmount renders a currency amount with two decimals, e.g. "$11.50".
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
