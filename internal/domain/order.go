package domain

import "time"

// CustomerDetails are the checkout form fields recorded on an order.
// Email and notes are optional.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Notes   string `json:"notes,omitempty"`
}

// Order is immutable once created. Items are a deep copy of the cart at
// submission time, so later cart mutations cannot reach into it.
type Order struct {
	CustomerDetails
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Date  time.Time  `json:"date"`
}
