package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"grocerpos/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter bulk-loads products from a JSON export (an array of product
// objects) into the catalog, for stocking a new store without clicking through
// the add dialog once per item.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

type jsonRow struct {
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

// Run parses the export and inserts every row, returning how many landed.
// The first invalid row aborts the run so a typo cannot half-load a file.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var rows []jsonRow
	if err := json.NewDecoder(i.reader).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}

	for n, row := range rows {
		if err := validateRow(row); err != nil {
			return 0, fmt.Errorf("row %d: %w", n, err)
		}
	}

	imported := 0
	for n, row := range rows {
		_, err := i.productRepo.Create(ctx, domain.Product{
			Name:  strings.TrimSpace(row.Name),
			Image: row.Image,
			Price: row.Price,
			Stock: row.Stock,
		})
		if err != nil {
			return imported, fmt.Errorf("insert row %d (%q): %w", n, row.Name, err)
		}
		imported++
	}
	return imported, nil
}

func validateRow(row jsonRow) error {
	if strings.TrimSpace(row.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if row.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if row.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	return nil
}
