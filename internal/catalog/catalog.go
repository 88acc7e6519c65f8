package catalog

import (
	"context"
	"sync"

	"floralblossom/internal/domain"
)

// Catalog holds the most recently loaded product list. Lines in the
// cart snapshot their product at add time, so a refresh never rewrites
// existing cart state.
type Catalog struct {
	mu       sync.RWMutex
	loader   *Loader
	products []domain.Product
}

func New(loader *Loader) *Catalog {
	return &Catalog{loader: loader}
}

// NewStatic builds a catalog from an already known product list. Used
// by tests and offline tooling; Refresh is a no-op without a loader.
func NewStatic(products []domain.Product) *Catalog {
	return &Catalog{products: products}
}

// Refresh loads the product list and swaps it in atomically. On failure
// the previously loaded list, if any, stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.loader == nil {
		return nil
	}
	products, err := c.loader.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return nil
}

// Products returns a copy of the current list.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Empty reports whether no list has been loaded yet.
func (c *Catalog) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products) == 0
}
