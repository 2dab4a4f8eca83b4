package facades

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/usecase"
)

// AuthFacadeStub implements handlers.AuthFacade with overridable funcs.
type AuthFacadeStub struct {
	RegisterFn   func(ctx context.Context, name, email, password string) (string, error)
	LoginFn      func(ctx context.Context, email, password string, guestCart []model.CartItem) (string, usecase.MergeReport, error)
	ParseTokenFn func(token string) (model.Requester, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return "token", nil
}

func (s AuthFacadeStub) Login(ctx context.Context, email, password string, guestCart []model.CartItem) (string, usecase.MergeReport, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password, guestCart)
	}
	return "token", usecase.MergeReport{}, nil
}

func (s AuthFacadeStub) ParseToken(token string) (model.Requester, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return model.Requester{UserID: "u-1", Role: model.RoleCustomer}, nil
}

// CartFacadeStub implements handlers.CartFacade.
type CartFacadeStub struct {
	CartItemsFn      func(ctx context.Context, userID string) ([]model.CartEntry, error)
	AddCartItemFn    func(ctx context.Context, userID, productID string, quantity int) error
	UpdateCartItemFn func(ctx context.Context, userID, productID string, quantity int) error
	RemoveCartItemFn func(ctx context.Context, userID, productID string) error
	ClearCartFn      func(ctx context.Context, userID string) error
}

func (s CartFacadeStub) CartItems(ctx context.Context, userID string) ([]model.CartEntry, error) {
	if s.CartItemsFn != nil {
		return s.CartItemsFn(ctx, userID)
	}
	return nil, nil
}

func (s CartFacadeStub) AddCartItem(ctx context.Context, userID, productID string, quantity int) error {
	if s.AddCartItemFn != nil {
		return s.AddCartItemFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartFacadeStub) UpdateCartItem(ctx context.Context, userID, productID string, quantity int) error {
	if s.UpdateCartItemFn != nil {
		return s.UpdateCartItemFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID string) error {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, userID, productID)
	}
	return nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context, userID string) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub implements handlers.OrderFacade.
type OrderFacadeStub struct {
	CheckoutFn        func(ctx context.Context, req model.Requester, input usecase.CheckoutInput) (*model.Order, error)
	OrderFn           func(ctx context.Context, req model.Requester, orderID string) (*model.Order, error)
	OrdersFn          func(ctx context.Context, req model.Requester) ([]model.Order, error)
	TransitionOrderFn func(ctx context.Context, req model.Requester, orderID, status string) (*model.Order, error)
	DeleteOrderFn     func(ctx context.Context, req model.Requester, orderID string) error
}

func (s OrderFacadeStub) Checkout(ctx context.Context, req model.Requester, input usecase.CheckoutInput) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, req, input)
	}
	return &model.Order{ID: "o-1"}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, req model.Requester, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, req, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, req model.Requester) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, req)
	}
	return nil, nil
}

func (s OrderFacadeStub) TransitionOrder(ctx context.Context, req model.Requester, orderID, status string) (*model.Order, error) {
	if s.TransitionOrderFn != nil {
		return s.TransitionOrderFn(ctx, req, orderID, status)
	}
	return &model.Order{ID: orderID}, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, req model.Requester, orderID string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, req, orderID)
	}
	return nil
}

// InvoiceFacadeStub implements handlers.InvoiceFacade.
type InvoiceFacadeStub struct {
	InvoiceFn func(ctx context.Context, req model.Requester, orderID string) (*usecase.InvoiceView, error)
}

func (s InvoiceFacadeStub) Invoice(ctx context.Context, req model.Requester, orderID string) (*usecase.InvoiceView, error) {
	if s.InvoiceFn != nil {
		return s.InvoiceFn(ctx, req, orderID)
	}
	return &usecase.InvoiceView{InvoiceNumber: "INV-1"}, nil
}

// DirectoryFacadeStub implements handlers.DirectoryFacade.
type DirectoryFacadeStub struct {
	CreateUserFn func(ctx context.Context, input usecase.CreateUserInput) (*model.User, error)
	UserFn       func(ctx context.Context, id string) (*model.User, error)
	UsersFn      func(ctx context.Context) ([]model.User, error)
	UpdateUserFn func(ctx context.Context, id string, input usecase.UpdateUserInput) (*model.User, error)
	DeleteUserFn func(ctx context.Context, id string) error
}

func (s DirectoryFacadeStub) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, input)
	}
	return &model.User{ID: "u-1"}, nil
}

func (s DirectoryFacadeStub) User(ctx context.Context, id string) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id}, nil
}

func (s DirectoryFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

func (s DirectoryFacadeStub) UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, input)
	}
	return &model.User{ID: id}, nil
}

func (s DirectoryFacadeStub) DeleteUser(ctx context.Context, id string) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// CatalogFacadeStub implements handlers.CatalogFacade.
type CatalogFacadeStub struct {
	CreateProductFn func(ctx context.Context, product model.Product) (*model.Product, error)
	ProductFn       func(ctx context.Context, id string) (*model.Product, error)
	ProductsFn      func(ctx context.Context) ([]model.Product, error)
	UpdateProductFn func(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProductFn func(ctx context.Context, id string) error
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	return &model.Product{ID: "p-1"}, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return &product, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// ActivityFacadeStub implements handlers.ActivityFacade.
type ActivityFacadeStub struct {
	RecentActivityFn func(ctx context.Context, limit int) ([]model.ActivityEntry, error)
}

func (s ActivityFacadeStub) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if s.RecentActivityFn != nil {
		return s.RecentActivityFn(ctx, limit)
	}
	return nil, nil
}

// StorefrontFacadeStub aggregates all facade stubs.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CartFacadeStub
	OrderFacadeStub
	InvoiceFacadeStub
	DirectoryFacadeStub
	CatalogFacadeStub
	ActivityFacadeStub
}
