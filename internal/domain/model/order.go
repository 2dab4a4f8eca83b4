package model

import "time"

// OrderStatus describes order processing lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// KnownStatus reports whether the value is one of the defined statuses.
func KnownStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status has no outbound transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Address is a shipping address snapshot stored with the order.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Empty reports whether no address was supplied.
func (a Address) Empty() bool {
	return a == Address{}
}

// OrderItem is a purchased product snapshot with quantity and totals.
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
	Total     float64
}

// Approval is the write-once provenance stamped on the first
// transition into the approved status.
type Approval struct {
	By string
	At time.Time
}

// Order describes a placed purchase order.
type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	Items           []OrderItem
	Subtotal        float64
	Tax             float64
	Shipping        float64
	Total           float64
	Status          OrderStatus
	PaymentMethod   string
	ShippingAddress Address
	Notes           string
	InvoiceNumber   *string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time
}
