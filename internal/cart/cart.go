package cart

import (
	"errors"

	"grocerpos/internal/domain"
)

// Cart holds the lines of an in-progress sale. It lives only in terminal
// memory and is emptied by checkout. Lines keep insertion order; adding a
// product already in the cart merges into its existing line.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing line for the product, or appends a new
// line. Quantities must be positive; fractional kilograms are fine.
func (c *Cart) Add(p domain.Product, quantity float64) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
	})
	return nil
}

// Remove drops the line with the given product id. Removing an absent id is a
// no-op; remaining lines keep their order.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total sums price times quantity over all lines. Empty cart totals zero.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// Lines returns a copied snapshot of the cart contents.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}
