package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"grocerpos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id::text, name, image, price, stock, created_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, name, image, price, stock, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, image, price, stock)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q, product.Name, product.Image, product.Price, product.Stock).
		Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", product.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", res.ID, res.Name)
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, image = $3, price = $4, stock = $5
WHERE id = $1
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q, product.ID, product.Name, product.Image, product.Price, product.Stock).
		Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: update id=%s not found", product.ID)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", product.ID, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s name=%q", res.ID, res.Name)
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("product repo: delete id=%s not found", id)
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

// ReduceStock decrements stock for every sold line in a single transaction.
// Stock is clamped at zero; the schema check would otherwise reject a sale
// that slightly oversells a weighed item.
func (r *postgresRepo) ReduceStock(ctx context.Context, items []domain.CartLine) error {
	if len(items) == 0 {
		return fmt.Errorf("reduce stock: %w: no items", domain.ErrValidation)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return fmt.Errorf("reduce stock: %w: quantity must be positive for product %s", domain.ErrValidation, item.ProductID)
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Printf("product repo: reduce stock begin error=%v", err)
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE products
SET stock = GREATEST(stock - $2, 0)
WHERE id = $1
`
	for _, item := range items {
		tag, err := tx.Exec(ctx, q, item.ProductID, item.Quantity)
		if err != nil {
			r.logger.Printf("product repo: reduce stock id=%s error=%v", item.ProductID, err)
			return err
		}
		if tag.RowsAffected() == 0 {
			r.logger.Printf("product repo: reduce stock id=%s not found", item.ProductID)
			return domain.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("product repo: reduce stock commit error=%v", err)
		return err
	}
	r.logger.Printf("product repo: reduced stock for %d items", len(items))
	return nil
}
