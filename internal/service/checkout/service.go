package checkout

import (
	"context"

	"floralblossom/internal/domain"
)

// CartStore is the slice of the cart service the checkout flow needs.
type CartStore interface {
	State() domain.Cart
	Clear(ctx context.Context)
}

// OrderLog records completed orders.
type OrderLog interface {
	Submit(ctx context.Context, customer domain.CustomerDetails, cart domain.Cart) domain.Order
}

// Service gates order submission behind form validation and drives the
// submit-then-clear protocol.
type Service struct {
	cart   CartStore
	orders OrderLog
}

func New(cart CartStore, orders OrderLog) *Service {
	return &Service{cart: cart, orders: orders}
}

// SubmitInput carries the raw checkout form values.
type SubmitInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Notes   string `json:"notes"`
}

func (in SubmitInput) values() map[string]string {
	return map[string]string{
		"name":    in.Name,
		"phone":   in.Phone,
		"email":   in.Email,
		"address": in.Address,
		"city":    in.City,
		"pincode": in.Pincode,
	}
}

// Submit validates the form, records the order from the current cart
// state, then clears the cart. Recording and clearing stay two separate
// steps so an order is only ever built from a still-intact cart.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.Order, error) {
	res := ValidateForm(in.values(), RequiredFields)
	if !res.Valid {
		return nil, &domain.ValidationError{Fields: res.Errors}
	}

	customer := domain.CustomerDetails{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Pincode: in.Pincode,
		Notes:   in.Notes,
	}
	ord := s.orders.Submit(ctx, customer, s.cart.State())
	s.cart.Clear(ctx)
	return &ord, nil
}
