package handlers

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string, guestCart []model.CartItem) (string, usecase.MergeReport, error)
	ParseToken(token string) (model.Requester, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	CartItems(ctx context.Context, userID string) ([]model.CartEntry, error)
	AddCartItem(ctx context.Context, userID, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, userID, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, req model.Requester, input usecase.CheckoutInput) (*model.Order, error)
	Order(ctx context.Context, req model.Requester, orderID string) (*model.Order, error)
	Orders(ctx context.Context, req model.Requester) ([]model.Order, error)
	TransitionOrder(ctx context.Context, req model.Requester, orderID, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, req model.Requester, orderID string) error
}

// InvoiceFacade resolves order invoices.
type InvoiceFacade interface {
	Invoice(ctx context.Context, req model.Requester, orderID string) (*usecase.InvoiceView, error)
}

// DirectoryFacade provides staff-side user management.
type DirectoryFacade interface {
	CreateUser(ctx context.Context, input usecase.CreateUserInput) (*model.User, error)
	User(ctx context.Context, id string) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CatalogFacade provides product management.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ActivityFacade exposes the recent activity feed.
type ActivityFacade interface {
	RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CartFacade
	OrderFacade
	InvoiceFacade
	DirectoryFacade
	CatalogFacade
	ActivityFacade
}
