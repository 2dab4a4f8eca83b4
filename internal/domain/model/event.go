package model

import "time"

// OrderEventAction names the mutation that produced an order event.
type OrderEventAction string

const (
	OrderEventStatusChanged OrderEventAction = "status_changed"
	OrderEventDeleted       OrderEventAction = "deleted"
)

// OrderEvent is emitted after an order mutation and consumed by the
// activity recorder and the outbound webhook.
type OrderEvent struct {
	OrderID     string
	OrderNumber string
	Action      OrderEventAction
	Status      OrderStatus
	ActorID     string
	OccurredAt  time.Time
}

// ActivityEntry is a persisted record of an order event.
type ActivityEntry struct {
	ID        int64
	UserID    string
	Action    string
	Entity    string
	EntityID  string
	CreatedAt time.Time
}
