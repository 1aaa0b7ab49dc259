package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"grocerpos/internal/domain"
)

// Renderer formats finalized invoices into the printable text document and
// writes them to disk. The document is a plain line layout: header with date,
// customer and phone, one line per item, then the total.
type Renderer struct {
	dir    string
	symbol string
}

func NewRenderer(dir, currencySymbol string) *Renderer {
	return &Renderer{dir: dir, symbol: currencySymbol}
}

// Render produces the invoice document.
func (r *Renderer) Render(inv domain.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice - %s\n", inv.Date)
	fmt.Fprintf(&b, "Customer: %s\n", inv.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", inv.Customer.Phone)
	for _, item := range inv.Items {
		fmt.Fprintf(&b, "%s - %s%s x %s\n", item.Name, r.symbol, formatAmount(item.Price), formatAmount(item.Quantity))
	}
	fmt.Fprintf(&b, "Total: %s%s\n", r.symbol, formatAmount(inv.Total))
	return b.String()
}

// Save writes the rendered document into the renderer's directory and returns
// the full path.
func (r *Renderer) Save(inv domain.Invoice) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("save invoice: %w", err)
	}
	path := filepath.Join(r.dir, Filename(inv.Customer))
	if err := os.WriteFile(path, []byte(r.Render(inv)), 0o644); err != nil {
		return "", fmt.Errorf("save invoice: %w", err)
	}
	return path, nil
}

// Filename derives the output name from the customer fields. Free-text name
// and phone go straight into a filesystem path, so anything outside
// [A-Za-z0-9._-] collapses to a single dash and empty parts become "unknown".
func Filename(c domain.Customer) string {
	return "invoice_" + sanitize(c.Name) + "_" + sanitize(c.Phone) + ".txt"
}

func sanitize(part string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range part {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "unknown"
	}
	return out
}

// formatAmount prints numbers the way the screens always showed them: no
// forced decimals, fractions kept as typed.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
