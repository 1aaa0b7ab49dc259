package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"grocerpos/internal/domain"
)

type stubLister struct {
	products []domain.Product
	err      error
	calls    int
}

func (s *stubLister) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.calls++
	return s.products, s.err
}

// gatedLister blocks each ListProducts call until the test releases it, so
// tests can control which response resolves first.
type gatedLister struct {
	mu      sync.Mutex
	gates   []chan []domain.Product
	entered chan int
}

func newGatedLister() *gatedLister {
	return &gatedLister{entered: make(chan int, 8)}
}

func (g *gatedLister) ListProducts(_ context.Context) ([]domain.Product, error) {
	g.mu.Lock()
	idx := len(g.gates)
	gate := make(chan []domain.Product)
	g.gates = append(g.gates, gate)
	g.mu.Unlock()
	g.entered <- idx
	return <-gate, nil
}

func TestRefreshAndSnapshot(t *testing.T) {
	lister := &stubLister{products: []domain.Product{{ID: "p1", Name: "Rice", Price: 50}}}
	cache := NewCache(lister, nil)

	if got := cache.Products(); len(got) != 0 {
		t.Fatalf("expected empty cache before refresh, got %+v", got)
	}
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	got := cache.Products()
	if len(got) != 1 || got[0].Name != "Rice" {
		t.Fatalf("unexpected snapshot %+v", got)
	}

	got[0].Price = 999
	if cache.Products()[0].Price != 50 {
		t.Fatalf("snapshot must be a copy")
	}
}

func TestRefreshErrorKeepsCache(t *testing.T) {
	lister := &stubLister{products: []domain.Product{{ID: "p1", Name: "Rice"}}}
	cache := NewCache(lister, nil)
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	lister.err = errors.New("boom")
	if err := cache.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if len(cache.Products()) != 1 {
		t.Fatalf("failed refresh must not clear the cache")
	}
}

func TestFind(t *testing.T) {
	lister := &stubLister{products: []domain.Product{{ID: "p1", Name: "Rice"}}}
	cache := NewCache(lister, nil)
	cache.Refresh(context.Background())

	if _, ok := cache.Find("p1"); !ok {
		t.Fatalf("expected to find p1")
	}
	if _, ok := cache.Find("missing"); ok {
		t.Fatalf("did not expect to find missing id")
	}
}

func TestLaterRefreshWinsWhenEarlierResolvesLast(t *testing.T) {
	lister := newGatedLister()
	cache := NewCache(lister, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		cache.Refresh(context.Background())
	}()
	first := <-lister.entered

	go func() {
		defer wg.Done()
		cache.Refresh(context.Background())
	}()
	second := <-lister.entered

	// The refresh triggered second responds first.
	lister.gates[second] <- []domain.Product{{ID: "p2", Name: "fresh"}}
	// The earlier refresh straggles in afterwards and must be discarded.
	lister.gates[first] <- []domain.Product{{ID: "p1", Name: "stale"}}
	wg.Wait()

	got := cache.Products()
	if len(got) != 1 || got[0].Name != "fresh" {
		t.Fatalf("expected the later-triggered refresh to win, got %+v", got)
	}
}
