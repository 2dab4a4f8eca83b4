package dto

import (
	"time"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/usecase"
)

// AddressPayload mirrors the shipping address on the wire.
type AddressPayload struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a AddressPayload) toModel() model.Address {
	return model.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func newAddressPayload(a model.Address) AddressPayload {
	return AddressPayload{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// CheckoutRequest describes the order placement payload. Item lines
// come from the server cart, never from the client.
type CheckoutRequest struct {
	PaymentMethod   string         `json:"paymentMethod"`
	Tax             float64        `json:"tax"`
	Shipping        float64        `json:"shipping"`
	ShippingAddress AddressPayload `json:"shippingAddress"`
	Notes           string         `json:"notes"`
}

// Input converts the request to the checkout input.
func (r CheckoutRequest) Input() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		PaymentMethod:   r.PaymentMethod,
		Tax:             r.Tax,
		Shipping:        r.Shipping,
		ShippingAddress: r.ShippingAddress.toModel(),
		Notes:           r.Notes,
	}
}

// StatusRequest describes the status transition payload.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one purchased line.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// OrderResponse is the public order representation.
type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"orderNumber"`
	UserID          string              `json:"userId"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        float64             `json:"subtotal"`
	Tax             float64             `json:"tax"`
	Shipping        float64             `json:"shipping"`
	Total           float64             `json:"total"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	ShippingAddress AddressPayload      `json:"shippingAddress"`
	Notes           string              `json:"notes,omitempty"`
	InvoiceNumber   string              `json:"invoiceNumber,omitempty"`
	ApprovedBy      string              `json:"approvedBy,omitempty"`
	ApprovedAt      string              `json:"approvedAt,omitempty"`
	CreatedAt       string              `json:"createdAt"`
}

// NewOrderResponse converts an order to its public representation.
func NewOrderResponse(order *model.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		UserID:          order.UserID,
		Items:           make([]OrderItemResponse, 0, len(order.Items)),
		Subtotal:        order.Subtotal,
		Tax:             order.Tax,
		Shipping:        order.Shipping,
		Total:           order.Total,
		Status:          string(order.Status),
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: newAddressPayload(order.ShippingAddress),
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}
	if order.InvoiceNumber != nil {
		resp.InvoiceNumber = *order.InvoiceNumber
	}
	if order.ApprovedBy != nil {
		resp.ApprovedBy = *order.ApprovedBy
	}
	if order.ApprovedAt != nil {
		resp.ApprovedAt = order.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}

// NewOrderResponses converts an order list.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, NewOrderResponse(&orders[i]))
	}
	return result
}
