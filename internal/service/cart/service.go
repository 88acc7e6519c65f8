package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"floralblossom/internal/domain"
	"floralblossom/internal/repository/kv"
)

// Service is the authoritative cart state for the running session. Every
// mutation persists the full serialized cart under kv.CartKey; a failed
// write is logged and swallowed so the in-memory cart stays usable
// (session-only degrade, never an error to the caller).
type Service struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	store  kv.Store
	logger *log.Logger
}

// New builds the store and hydrates it from a previously persisted
// snapshot when one exists. An unreadable or corrupt snapshot starts
// the session with an empty cart instead of failing startup.
func New(ctx context.Context, store kv.Store, logger *log.Logger) *Service {
	s := &Service{store: store, logger: logger}

	raw, ok, err := store.Get(ctx, kv.CartKey)
	if err != nil {
		s.logger.Printf("read persisted cart: %v", err)
		return s
	}
	if !ok {
		return s
	}
	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Printf("discard corrupt persisted cart: %v", err)
		return s
	}
	s.lines = lines
	return s
}

// AddItem puts one unit of the product into the cart. An existing line
// increments its quantity; a new line snapshots the product's current
// title, price and image. Returns domain.ErrNotFound when the id is not
// in the catalog.
func (s *Service) AddItem(ctx context.Context, productID int, products []domain.Product) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return domain.Cart{}, domain.ErrNotFound
	}

	if line := s.find(productID); line != nil {
		line.Quantity++
	} else {
		s.lines = append(s.lines, domain.LineSnapshot(*product))
	}

	s.persist(ctx)
	return s.snapshot(), nil
}

// UpdateQuantity adjusts a line's quantity by delta. A result of zero or
// less removes the line. Returns domain.ErrNotFound when no line for the
// product exists.
func (s *Service) UpdateQuantity(ctx context.Context, productID, delta int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.find(productID)
	if line == nil {
		return domain.Cart{}, domain.ErrNotFound
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		s.remove(productID)
	}

	s.persist(ctx)
	return s.snapshot(), nil
}

// RemoveItem drops the line for the product. Removing an absent id is a
// no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, productID int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(productID)
	s.persist(ctx)
	return s.snapshot()
}

// Clear empties the cart and persists the empty state (an empty list,
// not a deletion of the key).
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// State returns a snapshot of the current cart. Callers can hold it
// without aliasing the store's state.
func (s *Service) State() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Totals recomputes the derived item count and price sum.
func (s *Service) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Lines: s.lines}.Totals()
}

func (s *Service) find(productID int) *domain.CartLine {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return &s.lines[i]
		}
	}
	return nil
}

func (s *Service) remove(productID int) {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

func (s *Service) snapshot() domain.Cart {
	return domain.Cart{Lines: s.lines}.Clone()
}

// persist writes the serialized lines under the fixed cart key. Errors
// are logged, never propagated; the in-memory mutation already stands.
func (s *Service) persist(ctx context.Context) {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		s.logger.Printf("encode cart: %v", err)
		return
	}
	if err := s.store.Set(ctx, kv.CartKey, string(raw)); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
}
