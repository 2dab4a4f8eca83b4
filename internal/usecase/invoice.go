package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
)

// InvoiceLine is a rendered order item.
type InvoiceLine struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

// InvoiceBillTo identifies who the invoice is billed to.
type InvoiceBillTo struct {
	Name    string
	Email   string
	Phone   string
	Address model.Address
}

// InvoiceView is the single structured source for every invoice
// presentation: the JSON endpoint and both HTML variants render from
// it without recomputing anything.
type InvoiceView struct {
	InvoiceNumber string
	InvoiceDate   string
	OrderNumber   string
	Status        string
	PaymentMethod string
	ApproverName  string
	BillTo        InvoiceBillTo
	Lines         []InvoiceLine
	Subtotal      string
	Tax           string
	Shipping      string
	Total         string
	Notes         string
}

// InvoiceUseCase assigns invoice numbers and builds invoice views.
type InvoiceUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(orders repository.OrderRepository, users repository.UserRepository) *InvoiceUseCase {
	return &InvoiceUseCase{orders: orders, users: users}
}

// GetInvoice resolves the order within the requester's scope, assigns
// an invoice number on first access, and returns the rendered view.
func (u *InvoiceUseCase) GetInvoice(ctx context.Context, req model.Requester, orderID string) (*InvoiceView, error) {
	order, err := u.orders.GetByID(ctx, orderID, ScopeFor(req))
	if err != nil {
		return nil, err
	}

	if err := u.EnsureInvoiceNumber(ctx, order); err != nil {
		return nil, err
	}

	billTo, err := u.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	// A deleted approver account leaves the name blank; anything else
	// is an infrastructure failure.
	var approverName string
	if order.ApprovedBy != nil {
		approver, err := u.users.GetByID(ctx, *order.ApprovedBy)
		switch {
		case err == nil:
			approverName = approver.Name
		case !errors.Is(err, domainErrors.ErrNotFound):
			return nil, err
		}
	}

	view := BuildInvoiceView(order, billTo, approverName)
	return &view, nil
}

// EnsureInvoiceNumber assigns a number exactly once per order. An
// already numbered order is returned untouched. The persistence write
// is conditional on the column still being unset; losing that race
// means another caller won, so the stored value is re-read and adopted
// instead of the locally generated one.
func (u *InvoiceUseCase) EnsureInvoiceNumber(ctx context.Context, order *model.Order) error {
	if order.InvoiceNumber != nil && *order.InvoiceNumber != "" {
		return nil
	}

	number := generateInvoiceNumber()
	won, err := u.orders.SetInvoiceNumber(ctx, order.ID, number)
	if err != nil {
		return err
	}
	if won {
		order.InvoiceNumber = &number
		return nil
	}

	stored, err := u.orders.GetByID(ctx, order.ID, model.Scope{All: true})
	if err != nil {
		return err
	}
	if stored.InvoiceNumber == nil {
		return domainErrors.ErrConflict
	}
	order.InvoiceNumber = stored.InvoiceNumber
	return nil
}

// BuildInvoiceView is a pure transform from order data to the invoice
// view model. The invoice date prefers the approval date; totals are
// carried over from the order, never recomputed. Zero tax or shipping
// renders no line at all.
func BuildInvoiceView(order *model.Order, billTo *model.User, approverName string) InvoiceView {
	invoiceDate := order.CreatedAt
	if order.ApprovedAt != nil {
		invoiceDate = *order.ApprovedAt
	}

	var number string
	if order.InvoiceNumber != nil {
		number = *order.InvoiceNumber
	}

	name := billTo.Name
	if name == "" {
		name = billTo.Email
	}

	lines := make([]InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, InvoiceLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    money(item.Price),
			Total:    money(item.Total),
		})
	}

	view := InvoiceView{
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate.Format("January 2, 2006"),
		OrderNumber:   order.OrderNumber,
		Status:        strings.ToUpper(string(order.Status)),
		PaymentMethod: strings.ToUpper(order.PaymentMethod),
		ApproverName:  approverName,
		BillTo: InvoiceBillTo{
			Name:    name,
			Email:   billTo.Email,
			Phone:   billTo.Phone,
			Address: order.ShippingAddress,
		},
		Lines:    lines,
		Subtotal: money(order.Subtotal),
		Total:    money(order.Total),
		Notes:    order.Notes,
	}
	if order.Tax > 0 {
		view.Tax = money(order.Tax)
	}
	if order.Shipping > 0 {
		view.Shipping = money(order.Shipping)
	}
	return view
}

func money(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func generateInvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
