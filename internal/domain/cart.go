package domain

// CartLine is a product plus the quantity (kilograms) chosen for it.
// A cart holds at most one line per product id.
type CartLine struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
}

// Total is the line subtotal.
func (l CartLine) Total() float64 {
	return l.Price * l.Quantity
}

// Customer is free-text billing info captured at checkout.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
