package dto

import (
	"github.com/shopline/storefront/internal/usecase"
)

// InvoiceLineResponse is one rendered invoice line.
type InvoiceLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

// InvoiceBillToResponse identifies the billed party.
type InvoiceBillToResponse struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone,omitempty"`
	Address AddressPayload `json:"address"`
}

// InvoiceResponse is the JSON invoice representation. The HTML
// variants render the same view through a template instead.
type InvoiceResponse struct {
	InvoiceNumber string                `json:"invoiceNumber"`
	InvoiceDate   string                `json:"invoiceDate"`
	OrderNumber   string                `json:"orderNumber"`
	Status        string                `json:"status"`
	PaymentMethod string                `json:"paymentMethod"`
	ApproverName  string                `json:"approverName,omitempty"`
	BillTo        InvoiceBillToResponse `json:"billTo"`
	Lines         []InvoiceLineResponse `json:"lines"`
	Subtotal      string                `json:"subtotal"`
	Tax           string                `json:"tax,omitempty"`
	Shipping      string                `json:"shipping,omitempty"`
	Total         string                `json:"total"`
	Notes         string                `json:"notes,omitempty"`
}

// NewInvoiceResponse converts an invoice view to the wire shape.
func NewInvoiceResponse(view *usecase.InvoiceView) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceNumber: view.InvoiceNumber,
		InvoiceDate:   view.InvoiceDate,
		OrderNumber:   view.OrderNumber,
		Status:        view.Status,
		PaymentMethod: view.PaymentMethod,
		ApproverName:  view.ApproverName,
		BillTo: InvoiceBillToResponse{
			Name:    view.BillTo.Name,
			Email:   view.BillTo.Email,
			Phone:   view.BillTo.Phone,
			Address: newAddressPayload(view.BillTo.Address),
		},
		Lines:    make([]InvoiceLineResponse, 0, len(view.Lines)),
		Subtotal: view.Subtotal,
		Tax:      view.Tax,
		Shipping: view.Shipping,
		Total:    view.Total,
		Notes:    view.Notes,
	}
	for _, line := range view.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    line.Total,
		})
	}
	return resp
}
