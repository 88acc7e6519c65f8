package kv

import "context"

// Well-known state keys. The names match the original storefront's
// localStorage entries so persisted payloads stay interchangeable.
const (
	CartKey   = "floralblossom_cart"
	OrdersKey = "floralblossom_orders"
)

// Store is a string key-value store. Absence is reported through the
// second return value, not as an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
