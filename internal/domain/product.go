package domain

// Product is one catalog entry. The catalog is loaded whole from the
// external source and is read-only to every other component.
type Product struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
