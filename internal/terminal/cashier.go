package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"grocerpos/internal/cart"
	"grocerpos/internal/domain"
)

// catalogView is the slice of the catalog cache the screens use.
type catalogView interface {
	Refresh(ctx context.Context) error
	Products() []domain.Product
	Find(id string) (domain.Product, bool)
}

type checkoutService interface {
	Checkout(ctx context.Context, c *cart.Cart, customer domain.Customer) (*domain.Invoice, error)
}

type invoicePrinter interface {
	Render(inv domain.Invoice) string
	Save(inv domain.Invoice) (string, error)
}

// Cashier holds the billing screen state: the cart being assembled, the
// pending product selection and quantity, the customer fields and the invoice
// awaiting print. Rendering code reads it; only these methods mutate it.
type Cashier struct {
	catalog  catalogView
	checkout checkoutService
	printer  invoicePrinter
	logger   *log.Logger

	cart       *cart.Cart
	customer   domain.Customer
	selected   *domain.Product
	pendingQty float64
	invoice    *domain.Invoice
	notices    []string
}

func NewCashier(catalog catalogView, checkout checkoutService, printer invoicePrinter, logger *log.Logger) *Cashier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Cashier{
		catalog:  catalog,
		checkout: checkout,
		printer:  printer,
		logger:   logger,
		cart:     cart.New(),
	}
}

// LoadProducts refreshes the displayed catalog. Failures become a notice, not
// a stuck screen.
func (s *Cashier) LoadProducts(ctx context.Context) {
	if err := s.catalog.Refresh(ctx); err != nil {
		s.notify(err)
	}
}

func (s *Cashier) Products() []domain.Product {
	return s.catalog.Products()
}

// SelectProduct opens the quantity popup for a catalog product.
func (s *Cashier) SelectProduct(id string) error {
	p, ok := s.catalog.Find(id)
	if !ok {
		return fmt.Errorf("select product: %w", domain.ErrNotFound)
	}
	s.selected = &p
	s.pendingQty = 0
	return nil
}

func (s *Cashier) Selected() *domain.Product {
	return s.selected
}

func (s *Cashier) SetQuantity(kg float64) {
	s.pendingQty = kg
}

// ConfirmAdd moves the pending selection into the cart and closes the popup.
func (s *Cashier) ConfirmAdd() error {
	if s.selected == nil {
		return errors.New("no product selected")
	}
	if err := s.cart.Add(*s.selected, s.pendingQty); err != nil {
		return err
	}
	s.selected = nil
	s.pendingQty = 0
	return nil
}

// CancelSelection closes the quantity popup without touching the cart.
func (s *Cashier) CancelSelection() {
	s.selected = nil
	s.pendingQty = 0
}

func (s *Cashier) RemoveFromCart(productID string) {
	s.cart.Remove(productID)
}

func (s *Cashier) CartLines() []domain.CartLine {
	return s.cart.Lines()
}

func (s *Cashier) Total() float64 {
	return s.cart.Total()
}

func (s *Cashier) SetCustomer(name, phone string) {
	s.customer = domain.Customer{Name: name, Phone: phone}
}

// Checkout finalizes the sale. On success the invoice becomes visible and the
// cart is already empty; on failure the cart is untouched and the error is
// surfaced as a notice for retry or cancel.
func (s *Cashier) Checkout(ctx context.Context) error {
	inv, err := s.checkout.Checkout(ctx, s.cart, s.customer)
	if err != nil {
		s.notify(err)
		return err
	}
	s.invoice = inv
	return nil
}

func (s *Cashier) Invoice() *domain.Invoice {
	return s.invoice
}

// PrintInvoice writes the invoice document and resets every piece of transient
// state back to its initial value.
func (s *Cashier) PrintInvoice() (string, error) {
	if s.invoice == nil {
		return "", errors.New("no invoice to print")
	}
	path, err := s.printer.Save(*s.invoice)
	if err != nil {
		s.notify(err)
		return "", err
	}
	s.logger.Printf("cashier: invoice %s saved to %s", s.invoice.Number, path)
	s.reset()
	return path, nil
}

func (s *Cashier) reset() {
	s.cart.Clear()
	s.invoice = nil
	s.customer = domain.Customer{}
	s.selected = nil
	s.pendingQty = 0
}

func (s *Cashier) notify(err error) {
	s.notices = append(s.notices, noticeFor(err))
}

// TakeNotices drains the pending non-blocking notices.
func (s *Cashier) TakeNotices() []string {
	out := s.notices
	s.notices = nil
	return out
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrNetwork):
		return "could not reach the server, please try again"
	case errors.Is(err, domain.ErrValidation):
		return "the server rejected the request: " + err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "the item no longer exists, reload the product list"
	default:
		return err.Error()
	}
}
