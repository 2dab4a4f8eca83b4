package app

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/usecase"
)

// StorefrontFacade aggregates the use cases behind the single surface
// the HTTP layer talks to.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	cart      *usecase.CartUseCase
	orders    *usecase.OrderUseCase
	invoices  *usecase.InvoiceUseCase
	directory *usecase.DirectoryUseCase
	catalog   *usecase.CatalogUseCase
	activity  *usecase.ActivityUseCase
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	invoices *usecase.InvoiceUseCase,
	directory *usecase.DirectoryUseCase,
	catalog *usecase.CatalogUseCase,
	activity *usecase.ActivityUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:      auth,
		cart:      cart,
		orders:    orders,
		invoices:  invoices,
		directory: directory,
		catalog:   catalog,
		activity:  activity,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, name, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, name, email, password)
	return token, err
}

// Login authenticates and, on success, folds the submitted guest cart
// into the user's server cart. Merge failures never fail the login.
func (f *StorefrontFacade) Login(ctx context.Context, email, password string, guestCart []model.CartItem) (string, usecase.MergeReport, error) {
	user, token, err := f.auth.Authenticate(ctx, email, password)
	if err != nil {
		return "", usecase.MergeReport{}, err
	}
	report := f.cart.MergeGuestCart(ctx, user.ID, guestCart)
	return token, report, nil
}

func (f *StorefrontFacade) ParseToken(token string) (model.Requester, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CartItems(ctx context.Context, userID string) ([]model.CartEntry, error) {
	return f.cart.Items(ctx, userID)
}

func (f *StorefrontFacade) AddCartItem(ctx context.Context, userID, productID string, quantity int) error {
	return f.cart.AddItem(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) UpdateCartItem(ctx context.Context, userID, productID string, quantity int) error {
	return f.cart.UpdateItem(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID, productID string) error {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID string) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, req model.Requester, input usecase.CheckoutInput) (*model.Order, error) {
	return f.orders.Checkout(ctx, req, input)
}

func (f *StorefrontFacade) Order(ctx context.Context, req model.Requester, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, req, orderID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, req model.Requester) ([]model.Order, error) {
	return f.orders.List(ctx, req)
}

func (f *StorefrontFacade) TransitionOrder(ctx context.Context, req model.Requester, orderID, status string) (*model.Order, error) {
	return f.orders.Transition(ctx, req, orderID, status)
}

func (f *StorefrontFacade) DeleteOrder(ctx context.Context, req model.Requester, orderID string) error {
	return f.orders.Delete(ctx, req, orderID)
}

func (f *StorefrontFacade) Invoice(ctx context.Context, req model.Requester, orderID string) (*usecase.InvoiceView, error) {
	return f.invoices.GetInvoice(ctx, req, orderID)
}

func (f *StorefrontFacade) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*model.User, error) {
	return f.directory.Create(ctx, input)
}

func (f *StorefrontFacade) User(ctx context.Context, id string) (*model.User, error) {
	return f.directory.Get(ctx, id)
}

func (f *StorefrontFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.directory.List(ctx)
}

func (f *StorefrontFacade) UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput) (*model.User, error) {
	return f.directory.Update(ctx, id, input)
}

func (f *StorefrontFacade) DeleteUser(ctx context.Context, id string) error {
	return f.directory.Delete(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StorefrontFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StorefrontFacade) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	return f.activity.Recent(ctx, limit)
}
