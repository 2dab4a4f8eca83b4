package repository

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
)

// CartRepository describes persistence operations for server-held carts.
type CartRepository interface {
	// AddItem inserts the product into the cart or increases the stored
	// quantity when the product is already present.
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	Items(ctx context.Context, userID string) ([]model.CartEntry, error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
