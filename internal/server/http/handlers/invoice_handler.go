package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/server/http/dto"
	"github.com/shopline/storefront/internal/usecase"
)

// invoiceTemplate renders an invoice view as a standalone HTML page.
// The inline and download endpoints share it; they differ only in the
// Content-Disposition header.
var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
h1 { margin-bottom: 0; }
.meta { color: #666; margin-bottom: 24px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { padding: 8px 12px; border-bottom: 1px solid #ddd; text-align: left; }
th { background: #f5f5f5; }
.amount { text-align: right; }
.totals td { border: none; }
.totals .label { text-align: right; font-weight: bold; }
.grand td { border-top: 2px solid #333; font-weight: bold; }
</style>
</head>
<body>
<h1>Invoice {{.InvoiceNumber}}</h1>
<p class="meta">
Date: {{.InvoiceDate}}<br>
Order: {{.OrderNumber}}<br>
Status: {{.Status}}<br>
Payment: {{.PaymentMethod}}{{if .ApproverName}}<br>
Approved by: {{.ApproverName}}{{end}}
</p>
<h3>Bill To</h3>
<p>
{{.BillTo.Name}}<br>
{{.BillTo.Email}}{{if .BillTo.Phone}}<br>
{{.BillTo.Phone}}{{end}}{{if .BillTo.Address.Line1}}<br>
{{.BillTo.Address.Line1}}{{if .BillTo.Address.Line2}}, {{.BillTo.Address.Line2}}{{end}}<br>
{{.BillTo.Address.City}}{{if .BillTo.Address.State}}, {{.BillTo.Address.State}}{{end}} {{.BillTo.Address.PostalCode}}<br>
{{.BillTo.Address.Country}}{{end}}
</p>
<table>
<tr><th>Item</th><th>Qty</th><th class="amount">Price</th><th class="amount">Total</th></tr>
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td class="amount">{{.Price}}</td><td class="amount">{{.Total}}</td></tr>
{{end}}</table>
<table class="totals">
<tr><td class="label">Subtotal</td><td class="amount">{{.Subtotal}}</td></tr>
{{if .Tax}}<tr><td class="label">Tax</td><td class="amount">{{.Tax}}</td></tr>
{{end}}{{if .Shipping}}<tr><td class="label">Shipping</td><td class="amount">{{.Shipping}}</td></tr>
{{end}}<tr class="grand"><td class="label">Total</td><td class="amount">{{.Total}}</td></tr>
</table>
{{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}
</body>
</html>
`))

// InvoiceHandler serves the invoice in its three presentations.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler creates InvoiceHandler instance.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Get handles GET /api/orders/:orderID/invoice.
func (h *InvoiceHandler) Get(c *gin.Context) {
	view, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewInvoiceResponse(view))
}

// HTML handles GET /api/orders/:orderID/invoice/html.
func (h *InvoiceHandler) HTML(c *gin.Context) {
	view, ok := h.resolve(c)
	if !ok {
		return
	}
	h.render(c, view)
}

// Download handles GET /api/orders/:orderID/invoice/download. Same
// document as HTML, served as an attachment.
func (h *InvoiceHandler) Download(c *gin.Context) {
	view, ok := h.resolve(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+view.InvoiceNumber+".html"))
	h.render(c, view)
}

func (h *InvoiceHandler) resolve(c *gin.Context) (*usecase.InvoiceView, bool) {
	view, err := h.facade.Invoice(c.Request.Context(), CurrentRequester(c), c.Param("orderID"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return nil, false
	}
	return view, true
}

func (h *InvoiceHandler) render(c *gin.Context, view *usecase.InvoiceView) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := invoiceTemplate.Execute(c.Writer, view); err != nil {
		_ = c.Error(err)
	}
}
