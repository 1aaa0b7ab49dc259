package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name  string
	Image string
	Price float64
	Stock float64
}

// Apply inserts basic seed data for manual testing. It is idempotent: a
// product with the same name is updated in place rather than duplicated.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Name: "Rice", Price: 50, Stock: 100},
		{Name: "Sunflower Oil", Image: "/images/oil.png", Price: 120, Stock: 40},
		{Name: "Sugar", Price: 40, Stock: 60},
		{Name: "Toor Dal", Price: 80, Stock: 35},
		{Name: "Wheat Flour", Price: 45, Stock: 80},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, image, price, stock)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	if _, err := pool.Exec(ctx, q, p.Name, p.Image, p.Price, p.Stock); err != nil {
		return err
	}
	const upd = `
UPDATE products SET image = $2, price = $3, stock = $4 WHERE name = $1
`
	_, err := pool.Exec(ctx, upd, p.Name, p.Image, p.Price, p.Stock)
	return err
}
