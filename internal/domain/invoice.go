package domain

// Invoice is an immutable snapshot of a completed sale, built at checkout and
// consumed by the print action. It is not persisted; the billing fact lands on
// the server through the stock reduction.
type Invoice struct {
	Number   string     `json:"number"`
	Items    []CartLine `json:"items"`
	Total    float64    `json:"total"`
	Customer Customer   `json:"customer"`
	Date     string     `json:"date"`
}
