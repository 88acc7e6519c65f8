package domain

// CartLine carries a snapshot of the product taken when the line was
// added. Catalog changes after that point do not alter the line.
type CartLine struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered sequence of lines, insertion order preserved.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartTotals holds the values derived from the lines.
type CartTotals struct {
	ItemCount  int     `json:"itemCount"`
	TotalPrice float64 `json:"totalPrice"`
}

// Totals recomputes item count and price sum from the current lines.
// Always derived, never cached.
func (c Cart) Totals() CartTotals {
	var t CartTotals
	for _, line := range c.Lines {
		t.ItemCount += line.Quantity
		t.TotalPrice += line.Price * float64(line.Quantity)
	}
	return t
}

// Clone returns a copy whose backing slice does not alias the receiver's.
func (c Cart) Clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// LineSnapshot builds a new cart line from a product with quantity 1.
func LineSnapshot(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
}
