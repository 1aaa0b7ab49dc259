package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"grocerpos/internal/cart"
	"grocerpos/internal/domain"
	"github.com/google/uuid"
)

// invoiceTimeLayout mirrors the date text the printed invoices always carried.
const invoiceTimeLayout = "02/01/2006, 15:04:05"

type stockReducer interface {
	ReduceStock(ctx context.Context, items []domain.CartLine) error
}

type refresher interface {
	Refresh(ctx context.Context) error
}

// Service finalizes a sale. The stock reduction must be acknowledged by the
// server before the invoice is revealed; on failure the cart is left intact so
// the cashier can retry or cancel. The old behavior of showing the invoice
// regardless could present a paid invoice for stock that was never decremented.
type Service struct {
	client  stockReducer
	catalog refresher
	logger  *log.Logger
	now     func() time.Time
}

func New(client stockReducer, catalog refresher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		client:  client,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Checkout snapshots the cart into an invoice, sends the stock reduction and
// waits for it to land, then clears the cart and refreshes the catalog so
// displayed stock reflects the sale. The returned invoice is a copy; the cart
// is empty by the time it is observable.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, customer domain.Customer) (*domain.Invoice, error) {
	if c.Empty() {
		return nil, fmt.Errorf("checkout: %w: cart is empty", domain.ErrValidation)
	}

	items := c.Lines()
	if err := s.client.ReduceStock(ctx, items); err != nil {
		s.logger.Printf("checkout: stock reduction failed, keeping cart: %v", err)
		return nil, fmt.Errorf("checkout: %w", err)
	}

	inv := &domain.Invoice{
		Number:   uuid.NewString(),
		Items:    items,
		Total:    c.Total(),
		Customer: customer,
		Date:     s.now().Format(invoiceTimeLayout),
	}
	c.Clear()

	// Stock already moved on the server; a failed refresh only delays the
	// displayed numbers, so it must not fail the checkout.
	if err := s.catalog.Refresh(ctx); err != nil {
		s.logger.Printf("checkout: catalog refresh after sale failed: %v", err)
	}

	s.logger.Printf("checkout: invoice %s total=%v items=%d", inv.Number, inv.Total, len(inv.Items))
	return inv, nil
}
