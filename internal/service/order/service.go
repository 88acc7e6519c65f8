package order

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"floralblossom/internal/domain"
	"floralblossom/internal/repository/kv"
)

// Service keeps the append-only log of completed orders. Orders are
// never mutated or deleted; the log is re-persisted whole under
// kv.OrdersKey after every append (read-modify-write, single writer).
type Service struct {
	mu     sync.Mutex
	orders []domain.Order
	store  kv.Store
	logger *log.Logger
	now    func() time.Time
}

// New builds the store and hydrates the log from a previously persisted
// snapshot when one exists.
func New(ctx context.Context, store kv.Store, logger *log.Logger) *Service {
	s := &Service{store: store, logger: logger, now: time.Now}

	raw, ok, err := store.Get(ctx, kv.OrdersKey)
	if err != nil {
		s.logger.Printf("read persisted orders: %v", err)
		return s
	}
	if !ok {
		return s
	}
	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.logger.Printf("discard corrupt persisted orders: %v", err)
		return s
	}
	s.orders = orders
	return s
}

// Submit records an order from already-validated customer fields and the
// given cart. The cart is deep-copied, so mutations after submission
// cannot alter the recorded order. Clearing the cart is the caller's
// job, kept as an explicit second step.
func (s *Service) Submit(ctx context.Context, customer domain.CustomerDetails, cart domain.Cart) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := cart.Clone()
	items := snap.Lines
	if items == nil {
		items = []domain.CartLine{}
	}

	ord := domain.Order{
		CustomerDetails: customer,
		Items:           items,
		Total:           snap.Totals().TotalPrice,
		Date:            s.now().UTC(),
	}
	s.orders = append(s.orders, ord)
	s.persist(ctx)
	return ord
}

// Orders returns a copy of the log, oldest first.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Service) persist(ctx context.Context) {
	raw, err := json.Marshal(s.orders)
	if err != nil {
		s.logger.Printf("encode orders: %v", err)
		return
	}
	if err := s.store.Set(ctx, kv.OrdersKey, string(raw)); err != nil {
		s.logger.Printf("persist orders: %v", err)
	}
}
