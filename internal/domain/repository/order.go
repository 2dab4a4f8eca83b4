package repository

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Read operations take a Scope; an order outside the scope is reported
// as not found, identically to a missing one.
type OrderRepository interface {
	// Create persists the order with its items and clears the owner's
	// server cart in the same transaction.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string, scope model.Scope) (*model.Order, error)
	List(ctx context.Context, scope model.Scope) ([]model.Order, error)
	// UpdateStatus writes the new status. A non-nil approval is applied
	// with set-if-absent semantics so existing provenance survives.
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, approval *model.Approval) error
	// SetInvoiceNumber assigns the number only when none is stored yet
	// and reports whether this write won.
	SetInvoiceNumber(ctx context.Context, orderID, number string) (bool, error)
	Delete(ctx context.Context, id string) error
}
