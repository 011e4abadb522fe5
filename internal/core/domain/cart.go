package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type CartLine struct {
	EventID   string          `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Location  string          `json:"location"`
	Thumbnail string          `json:"thumbnail"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per event, in insertion order. Every line has a
// quantity of at least one.
type Cart struct {
	lines []CartLine
}

// NewCart builds a cart from stored lines, dropping lines that would break the
// cart invariants and merging duplicates.
func NewCart(lines []CartLine) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.EventID == "" || l.Quantity <= 0 || l.UnitPrice.IsNegative() {
			continue
		}

		if i := c.index(l.EventID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}

		c.lines = append(c.lines, l)
	}

	return c
}

func (c *Cart) index(eventID string) int {
	for i, l := range c.lines {
		if l.EventID == eventID {
			return i
		}
	}

	return -1
}

// Add increments the line for the event or snapshots the event into a new line.
func (c *Cart) Add(event Event, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	if i := c.index(event.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return
	}

	c.lines = append(c.lines, CartLine{
		EventID:   event.ID,
		Title:     event.Title,
		UnitPrice: event.Price,
		Quantity:  quantity,
		Location:  event.Location,
		Thumbnail: event.Thumbnail,
	})
}

// SetQuantity overwrites the quantity of a line; a quantity of zero or less
// removes it. It reports whether the event was in the cart.
func (c *Cart) SetQuantity(eventID string, quantity int) bool {
	i := c.index(eventID)
	if i < 0 {
		return false
	}

	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return true
	}

	c.lines[i].Quantity = quantity
	return true
}

func (c *Cart) Remove(eventID string) bool {
	i := c.index(eventID)
	if i < 0 {
		return false
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}

	return total
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Lines())
}

// UnmarshalCart decodes the stored form of a cart.
func UnmarshalCart(data []byte) (*Cart, error) {
	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}

	return NewCart(lines), nil
}
