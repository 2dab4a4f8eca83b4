package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
)

// EventPublisher receives order events for asynchronous handling.
type EventPublisher interface {
	Publish(event model.OrderEvent)
}

// OrderUseCase encapsulates checkout, scoped reads, and the order
// status lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
	events EventPublisher
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartRepository, events EventPublisher) *OrderUseCase {
	return &OrderUseCase{orders: orders, carts: carts, events: events}
}

// CheckoutInput carries the caller-supplied parts of a new order.
// Tax and shipping arrive already computed.
type CheckoutInput struct {
	PaymentMethod   string
	Tax             float64
	Shipping        float64
	ShippingAddress model.Address
	Notes           string
}

// Checkout builds an order from the requester's server cart, snapshots
// product names and prices, and clears the cart in the same
// transaction as the order insert.
func (u *OrderUseCase) Checkout(ctx context.Context, req model.Requester, input CheckoutInput) (*model.Order, error) {
	if strings.TrimSpace(input.PaymentMethod) == "" || input.Tax < 0 || input.Shipping < 0 {
		return nil, domainErrors.ErrValidation
	}
	if input.ShippingAddress.Empty() {
		return nil, fmt.Errorf("%w: shipping address is required", domainErrors.ErrValidation)
	}

	entries, err := u.carts.Items(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domainErrors.ErrValidation)
	}

	subtotal := decimal.Zero
	items := make([]model.OrderItem, 0, len(entries))
	for _, entry := range entries {
		if entry.Quantity < 1 || entry.Price < 0 {
			return nil, domainErrors.ErrValidation
		}
		price := decimal.NewFromFloat(entry.Price)
		lineTotal := price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		items = append(items, model.OrderItem{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Quantity:  entry.Quantity,
			Price:     entry.Price,
			Total:     lineTotal.InexactFloat64(),
		})
	}

	total := subtotal.
		Add(decimal.NewFromFloat(input.Tax)).
		Add(decimal.NewFromFloat(input.Shipping))

	order := model.Order{
		OrderNumber:     generateOrderNumber(),
		UserID:          req.UserID,
		Items:           items,
		Subtotal:        subtotal.InexactFloat64(),
		Tax:             input.Tax,
		Shipping:        input.Shipping,
		Total:           total.InexactFloat64(),
		Status:          model.OrderStatusPending,
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
	}

	return u.orders.Create(ctx, order)
}

// Get returns a single order within the requester's scope.
func (u *OrderUseCase) Get(ctx context.Context, req model.Requester, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID, ScopeFor(req))
}

// List returns orders within the requester's scope, newest first.
func (u *OrderUseCase) List(ctx context.Context, req model.Requester) ([]model.Order, error) {
	return u.orders.List(ctx, ScopeFor(req))
}

// Transition applies a status change requested by staff. The target may
// be any recognized status; delivered and cancelled orders accept none.
// The first transition into approved stamps who approved and when, and
// that provenance is never overwritten.
func (u *OrderUseCase) Transition(ctx context.Context, req model.Requester, orderID, target string) (*model.Order, error) {
	if !CanTransitionOrders(req.Role) {
		return nil, domainErrors.ErrForbidden
	}

	status := model.OrderStatus(strings.ToLower(strings.TrimSpace(target)))
	if !model.KnownStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, orderID, model.Scope{All: true})
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, fmt.Errorf("%w: no transitions out of %s", domainErrors.ErrValidation, order.Status)
	}

	var approval *model.Approval
	if status == model.OrderStatusApproved {
		approval = &model.Approval{By: req.UserID, At: time.Now()}
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status, approval); err != nil {
		return nil, err
	}

	updated, err := u.orders.GetByID(ctx, orderID, model.Scope{All: true})
	if err != nil {
		return nil, err
	}

	u.events.Publish(model.OrderEvent{
		OrderID:     updated.ID,
		OrderNumber: updated.OrderNumber,
		Action:      model.OrderEventStatusChanged,
		Status:      updated.Status,
		ActorID:     req.UserID,
		OccurredAt:  time.Now(),
	})

	return updated, nil
}

// Delete removes an order unconditionally. Superadmin only.
func (u *OrderUseCase) Delete(ctx context.Context, req model.Requester, orderID string) error {
	if !CanDeleteOrders(req.Role) {
		return domainErrors.ErrForbidden
	}

	order, err := u.orders.GetByID(ctx, orderID, model.Scope{All: true})
	if err != nil {
		return err
	}

	if err := u.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	u.events.Publish(model.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Action:      model.OrderEventDeleted,
		Status:      order.Status,
		ActorID:     req.UserID,
		OccurredAt:  time.Now(),
	})

	return nil
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
