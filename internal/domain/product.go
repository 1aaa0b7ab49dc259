package domain

import "time"

// Product is a catalog entry. Stock is measured in kilograms and may be
// fractional. The server assigns IDs; clients hold a read-only copy that is
// stale between refreshes.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"`
	Stock     float64   `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
}
