package model

// CartItem is a product reference with the desired quantity.
// Anonymous carts arriving from a client device are lists of these.
type CartItem struct {
	ProductID string
	Quantity  int
}

// CartEntry is a server cart line joined with its product snapshot.
type CartEntry struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}
