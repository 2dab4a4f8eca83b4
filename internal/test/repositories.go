package test

import (
	"context"
	"time"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail   map[string]*model.User
	ByID      map[string]*model.User
	Next      int
	Err       error
	GetByIDFn func(ctx context.Context, id string) (*model.User, error)
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[string]*model.User),
		Next:    1,
	}
}

// Seed inserts a user with a fixed identifier.
func (s *UserRepositoryStub) Seed(user model.User) *model.User {
	u := user
	s.ByEmail[u.Email] = &u
	s.ByID[u.ID] = &u
	return &u
}

// Create registers user unless one exists or the stub has an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user.ID = "u-" + string(rune('0'+s.Next))
	user.CreatedAt = time.Now()
	s.Next++
	stored := user
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, u := range s.ByID {
		result = append(result, *u)
	}
	return result, nil
}

// Update replaces stored profile fields.
func (s *UserRepositoryStub) Update(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored, ok := s.ByID[user.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.ByEmail, stored.Email)
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Phone = user.Phone
	stored.Role = user.Role
	s.ByEmail[stored.Email] = stored
	return stored, nil
}

// Delete removes the user.
func (s *UserRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, stored.Email)
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub keeps catalog entries in-memory.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs the stub with an initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[string]*model.Product)}
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product.ID == "" {
		product.ID = "p-" + product.Name
	}
	stored := product
	s.Products[stored.ID] = &stored
	return &stored, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := product
	s.Products[stored.ID] = &stored
	return &stored, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// OrderRepositoryStub allows tests to customize order persistence.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, model.Order) (*model.Order, error)
	GetByIDFn          func(context.Context, string, model.Scope) (*model.Order, error)
	ListFn             func(context.Context, model.Scope) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, string, model.OrderStatus, *model.Approval) error
	SetInvoiceNumberFn func(context.Context, string, string) (bool, error)
	DeleteFn           func(context.Context, string) error

	Orders      map[string]*model.Order
	UpdateCalls []StatusUpdateCall
	SetCalls    []InvoiceSetCall
	Deleted     []string
}

// StatusUpdateCall records one UpdateStatus invocation.
type StatusUpdateCall struct {
	OrderID  string
	Status   model.OrderStatus
	Approval *model.Approval
}

// InvoiceSetCall records one SetInvoiceNumber invocation.
type InvoiceSetCall struct {
	OrderID string
	Number  string
}

// NewOrderRepositoryStub constructs the stub with an initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Seed stores an order under its identifier.
func (s *OrderRepositoryStub) Seed(order model.Order) *model.Order {
	o := order
	s.Orders[o.ID] = &o
	return &o
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = "o-created"
	order.CreatedAt = time.Now()
	stored := order
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string, scope model.Scope) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id, scope)
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if !scope.All && order.UserID != scope.OwnerID {
		return nil, domainErrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context, scope model.Scope) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, scope)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if scope.All || o.UserID == scope.OwnerID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, approval *model.Approval) error {
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, Status: status, Approval: approval})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, approval)
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	if approval != nil {
		if order.ApprovedBy == nil {
			by := approval.By
			at := approval.At
			order.ApprovedBy = &by
			order.ApprovedAt = &at
		}
	}
	return nil
}

func (s *OrderRepositoryStub) SetInvoiceNumber(ctx context.Context, orderID, number string) (bool, error) {
	s.SetCalls = append(s.SetCalls, InvoiceSetCall{OrderID: orderID, Number: number})
	if s.SetInvoiceNumberFn != nil {
		return s.SetInvoiceNumberFn(ctx, orderID, number)
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return false, domainErrors.ErrNotFound
	}
	if order.InvoiceNumber != nil {
		return false, nil
	}
	stored := number
	order.InvoiceNumber = &stored
	return true, nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// CartRepositoryStub keeps cart lines in-memory and tracks add calls.
type CartRepositoryStub struct {
	AddItemFn func(context.Context, string, string, int) error
	ItemsFn   func(context.Context, string) ([]model.CartEntry, error)

	Lines   map[string]map[string]int
	Catalog map[string]model.Product
	Adds    []CartAddCall
	Cleared []string
}

// CartAddCall records one AddItem invocation.
type CartAddCall struct {
	UserID    string
	ProductID string
	Quantity  int
}

// NewCartRepositoryStub constructs the stub with initialized maps.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{
		Lines:   make(map[string]map[string]int),
		Catalog: make(map[string]model.Product),
	}
}

func (s *CartRepositoryStub) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	s.Adds = append(s.Adds, CartAddCall{UserID: userID, ProductID: productID, Quantity: quantity})
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, userID, productID, quantity)
	}
	if _, ok := s.Catalog[productID]; !ok {
		return domainErrors.ErrNotFound
	}
	if s.Lines[userID] == nil {
		s.Lines[userID] = make(map[string]int)
	}
	s.Lines[userID][productID] += quantity
	return nil
}

func (s *CartRepositoryStub) Items(ctx context.Context, userID string) ([]model.CartEntry, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	var result []model.CartEntry
	for productID, quantity := range s.Lines[userID] {
		product := s.Catalog[productID]
		result = append(result, model.CartEntry{
			ProductID: productID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}
	return result, nil
}

func (s *CartRepositoryStub) UpdateItem(ctx context.Context, userID, productID string, quantity int) error {
	if s.Lines[userID] == nil {
		return domainErrors.ErrNotFound
	}
	if _, ok := s.Lines[userID][productID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Lines[userID][productID] = quantity
	return nil
}

func (s *CartRepositoryStub) RemoveItem(ctx context.Context, userID, productID string) error {
	if s.Lines[userID] == nil {
		return domainErrors.ErrNotFound
	}
	if _, ok := s.Lines[userID][productID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Lines[userID], productID)
	return nil
}

func (s *CartRepositoryStub) Clear(ctx context.Context, userID string) error {
	delete(s.Lines, userID)
	s.Cleared = append(s.Cleared, userID)
	return nil
}

// ActivityRepositoryStub records activity entries in-memory.
type ActivityRepositoryStub struct {
	Entries []model.ActivityEntry
	Err     error
}

func (s *ActivityRepositoryStub) Record(ctx context.Context, entry model.ActivityEntry) error {
	if s.Err != nil {
		return s.Err
	}
	s.Entries = append(s.Entries, entry)
	return nil
}

func (s *ActivityRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if limit > len(s.Entries) {
		limit = len(s.Entries)
	}
	return s.Entries[:limit], nil
}

// EventPublisherStub collects published order events.
type EventPublisherStub struct {
	Events []model.OrderEvent
}

func (s *EventPublisherStub) Publish(event model.OrderEvent) {
	s.Events = append(s.Events, event)
}
