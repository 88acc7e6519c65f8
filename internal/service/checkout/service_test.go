package checkout

import (
	"context"
	"errors"
	"testing"

	"floralblossom/internal/domain"
)

type stubCart struct {
	state      domain.Cart
	clearCalls int
}

func (s *stubCart) State() domain.Cart {
	return s.state.Clone()
}

func (s *stubCart) Clear(_ context.Context) {
	s.clearCalls++
	s.state = domain.Cart{}
}

type stubOrders struct {
	submitted []domain.Order
	lastCart  domain.Cart
}

func (s *stubOrders) Submit(_ context.Context, customer domain.CustomerDetails, cart domain.Cart) domain.Order {
	s.lastCart = cart
	ord := domain.Order{
		CustomerDetails: customer,
		Items:           cart.Lines,
		Total:           cart.Totals().TotalPrice,
	}
	s.submitted = append(s.submitted, ord)
	return ord
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:    "Asha Kumar",
		Phone:   "9876543210",
		Address: "12 Garden Lane, Shivaji Nagar",
		City:    "Pune",
		Pincode: "411001",
		Notes:   "ring the bell twice",
	}
}

func filledCart() domain.Cart {
	return domain.Cart{Lines: []domain.CartLine{
		{ProductID: 1, Title: "Rose Bouquet", Price: 100, Quantity: 2},
		{ProductID: 2, Title: "Tulip Bunch", Price: 50, Quantity: 1},
	}}
}

func TestSubmitRecordsOrderThenClearsCart(t *testing.T) {
	cart := &stubCart{state: filledCart()}
	orders := &stubOrders{}
	svc := New(cart, orders)

	ord, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ord.Total != 250 {
		t.Fatalf("expected total 250, got %v", ord.Total)
	}
	if len(orders.submitted) != 1 {
		t.Fatalf("expected 1 recorded order, got %d", len(orders.submitted))
	}
	if len(orders.lastCart.Lines) != 2 {
		t.Fatalf("order must be built from the pre-clear cart, got %+v", orders.lastCart.Lines)
	}
	if cart.clearCalls != 1 {
		t.Fatalf("expected cart cleared exactly once, got %d", cart.clearCalls)
	}
	if ord.Notes != "ring the bell twice" {
		t.Fatalf("notes not carried onto the order: %+v", ord.CustomerDetails)
	}
}

func TestSubmitValidationFailureBlocksOrder(t *testing.T) {
	cart := &stubCart{state: filledCart()}
	orders := &stubOrders{}
	svc := New(cart, orders)

	in := validInput()
	in.Name = "Al"
	in.Phone = ""

	_, err := svc.Submit(context.Background(), in)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["name"] != "Name must be at least 3 characters" {
		t.Fatalf("unexpected name error %q", verr.Fields["name"])
	}
	if verr.Fields["phone"] != "Required" {
		t.Fatalf("unexpected phone error %q", verr.Fields["phone"])
	}

	if len(orders.submitted) != 0 {
		t.Fatalf("no order may be recorded on invalid input")
	}
	if cart.clearCalls != 0 {
		t.Fatalf("cart must stay intact on invalid input")
	}
}

func TestSubmitOptionalEmailAccepted(t *testing.T) {
	cart := &stubCart{state: filledCart()}
	svc := New(cart, &stubOrders{})

	in := validInput()
	in.Email = ""
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("empty optional email must pass: %v", err)
	}
}
