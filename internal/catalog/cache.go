package catalog

import (
	"context"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"grocerpos/internal/domain"
)

type lister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Cache is the terminal-side copy of the product list. Every mutation on a
// screen is followed by a Refresh; refreshes may overlap, so each one takes a
// sequence number before its request goes out and a response is discarded if a
// later-triggered refresh already landed. The cache is stale between
// refreshes; that is inherent to the design, not a bug.
type Cache struct {
	client  lister
	logger  *log.Logger
	nextSeq atomic.Uint64

	mu         sync.Mutex
	appliedSeq uint64
	products   []domain.Product
}

func NewCache(client lister, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Cache{client: client, logger: logger}
}

// Refresh fetches the catalog and replaces the cached copy unless a refresh
// triggered after this one has already applied.
func (c *Cache) Refresh(ctx context.Context) error {
	seq := c.nextSeq.Add(1)

	products, err := c.client.ListProducts(ctx)
	if err != nil {
		c.logger.Printf("catalog: refresh seq=%d error=%v", seq, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.appliedSeq {
		c.logger.Printf("catalog: refresh seq=%d stale, keeping seq=%d", seq, c.appliedSeq)
		return nil
	}
	c.appliedSeq = seq
	c.products = products
	c.logger.Printf("catalog: refresh seq=%d applied count=%d", seq, len(products))
	return nil
}

// Products returns a copied snapshot of the cached catalog.
func (c *Cache) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks up a cached product by id.
func (c *Cache) Find(id string) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
