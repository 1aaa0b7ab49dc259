package invoice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"grocerpos/internal/domain"
)

func sampleInvoice() domain.Invoice {
	return domain.Invoice{
		Number: "n-1",
		Items: []domain.CartLine{
			{ProductID: "1", Name: "Rice", Price: 50, Quantity: 2},
			{ProductID: "2", Name: "Oil", Price: 120, Quantity: 1},
		},
		Total:    220,
		Customer: domain.Customer{Name: "Asha", Phone: "98765"},
		Date:     "14/03/2025, 09:30:00",
	}
}

func TestRender(t *testing.T) {
	r := NewRenderer(t.TempDir(), "₹")
	doc := r.Render(sampleInvoice())

	want := []string{
		"Invoice - 14/03/2025, 09:30:00",
		"Customer: Asha",
		"Phone: 98765",
		"Rice - ₹50 x 2",
		"Oil - ₹120 x 1",
		"Total: ₹220",
	}
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), doc)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestRenderFractionalQuantity(t *testing.T) {
	r := NewRenderer(t.TempDir(), "₹")
	inv := domain.Invoice{
		Items: []domain.CartLine{{Name: "Dal", Price: 80, Quantity: 0.5}},
		Total: 40,
	}
	doc := r.Render(inv)
	if !strings.Contains(doc, "Dal - ₹80 x 0.5") {
		t.Fatalf("expected fractional quantity line, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Total: ₹40") {
		t.Fatalf("expected total line, got:\n%s", doc)
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		customer domain.Customer
		want     string
	}{
		{domain.Customer{Name: "Asha", Phone: "98765"}, "invoice_Asha_98765.txt"},
		{domain.Customer{Name: "A sha/..", Phone: "+91 98765"}, "invoice_A-sha-.._91-98765.txt"},
		{domain.Customer{}, "invoice_unknown_unknown.txt"},
		{domain.Customer{Name: "///", Phone: "***"}, "invoice_unknown_unknown.txt"},
	}
	for _, tc := range cases {
		if got := Filename(tc.customer); got != tc.want {
			t.Fatalf("Filename(%+v) = %q, want %q", tc.customer, got, tc.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, "₹")
	path, err := r.Save(sampleInvoice())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "invoice_Asha_98765.txt" {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved invoice: %v", err)
	}
	if !strings.Contains(string(data), "Total: ₹220") {
		t.Fatalf("saved document missing total:\n%s", data)
	}
}
