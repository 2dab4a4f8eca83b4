package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/server/http/dto"
	"github.com/shopline/storefront/internal/server/http/middleware"
	"github.com/shopline/storefront/internal/usecase"
	"github.com/shopline/storefront/internal/test/facades"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asRequester(req model.Requester) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.RequesterContextKey, req)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentRequester(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentRequester(c); got.UserID != "" {
		t.Fatalf("expected zero requester when not set, got %+v", got)
	}

	c.Set(middleware.RequesterContextKey, model.Requester{UserID: "u-42", Role: model.RoleAdmin})
	if got := CurrentRequester(c); got.UserID != "u-42" || got.Role != model.RoleAdmin {
		t.Fatalf("unexpected requester: %+v", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Name: "Ann", Email: "ann@shop.io", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(facades.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade facades.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed json",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "validation error",
			facade: facades.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrValidation
			}},
			body:   []byte(`{}`),
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			facade: facades.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrAlreadyExists
			}},
			body:   []byte(`{}`),
			status: http.StatusConflict,
		},
		{
			name: "internal error",
			facade: facades.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", context.DeadlineExceeded
			}},
			body:   []byte(`{}`),
			status: http.StatusInternalServerError,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tc.facade).Register, nil, tc.body, jsonHeaders)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLoginMergesGuestCart(t *testing.T) {
	var gotCart []model.CartItem
	facade := facades.AuthFacadeStub{LoginFn: func(ctx context.Context, email, password string, guestCart []model.CartItem) (string, usecase.MergeReport, error) {
		gotCart = guestCart
		return "session-token", usecase.MergeReport{Merged: 1, Failures: []usecase.MergeFailure{{ProductID: "p-gone", Reason: "not found"}}}, nil
	}}

	body, _ := json.Marshal(dto.LoginRequest{
		Email:    "ann@shop.io",
		Password: "pass",
		GuestCart: []dto.GuestCartItem{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-gone", Quantity: 1},
		},
	})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if len(gotCart) != 2 || gotCart[0].ProductID != "p-1" || gotCart[0].Quantity != 2 {
		t.Fatalf("guest cart not passed through: %+v", gotCart)
	}

	var loginResp dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if loginResp.Token != "session-token" || loginResp.Merged != 1 {
		t.Fatalf("unexpected response: %+v", loginResp)
	}
	if !loginResp.ClearGuestCart {
		t.Fatal("client must be told to clear its local cart")
	}
	if len(loginResp.MergeFailures) != 1 || loginResp.MergeFailures[0].ProductID != "p-gone" {
		t.Fatalf("unexpected merge failures: %+v", loginResp.MergeFailures)
	}
}

func TestAuthHandlerLoginRejectsBadCredentials(t *testing.T) {
	facade := facades.AuthFacadeStub{LoginFn: func(context.Context, string, string, []model.CartItem) (string, usecase.MergeReport, error) {
		return "", usecase.MergeReport{}, domainErrors.ErrInvalidCredentials
	}}
	body, _ := json.Marshal(dto.LoginRequest{Email: "ann@shop.io", Password: "wrong"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/logout", NewAuthHandler(facades.AuthFacadeStub{}).Logout, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired auth cookie, got %+v", cookies)
	}
}

func TestCartHandlerItems(t *testing.T) {
	facade := facades.CartFacadeStub{CartItemsFn: func(ctx context.Context, userID string) ([]model.CartEntry, error) {
		if userID != "u-1" {
			t.Fatalf("unexpected user id %q", userID)
		}
		return []model.CartEntry{{ProductID: "p-1", Name: "Mug", Price: 9.5, Quantity: 2}}, nil
	}}
	setup := asRequester(model.Requester{UserID: "u-1", Role: model.RoleCustomer})

	resp := performRequest(t, http.MethodGet, "/cart", NewCartHandler(facade).Items, setup, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var cart dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Total != 19 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
}

func TestCartHandlerAdd(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"validation", domainErrors.ErrValidation, http.StatusBadRequest},
		{"unknown product", domainErrors.ErrNotFound, http.StatusNotFound},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facade := facades.CartFacadeStub{AddCartItemFn: func(context.Context, string, string, int) error {
				return tc.err
			}}
			body, _ := json.Marshal(dto.CartItemRequest{ProductID: "p-1", Quantity: 1})
			setup := asRequester(model.Requester{UserID: "u-1"})
			resp := performRequest(t, http.MethodPost, "/cart", NewCartHandler(facade).Add, setup, body, jsonHeaders)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	facade := facades.OrderFacadeStub{CheckoutFn: func(ctx context.Context, req model.Requester, input usecase.CheckoutInput) (*model.Order, error) {
		if input.PaymentMethod != "card" || input.Tax != 8 || input.Shipping != 5 {
			t.Fatalf("unexpected input: %+v", input)
		}
		return &model.Order{ID: "o-1", OrderNumber: "ORD-1", Status: model.OrderStatusPending, Total: 113}, nil
	}}
	body, _ := json.Marshal(dto.CheckoutRequest{PaymentMethod: "card", Tax: 8, Shipping: 5})
	setup := asRequester(model.Requester{UserID: "u-1"})

	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Checkout, setup, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.OrderNumber != "ORD-1" || order.Total != 113 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderHandlerCheckoutEmptyCart(t *testing.T) {
	facade := facades.OrderFacadeStub{CheckoutFn: func(context.Context, model.Requester, usecase.CheckoutInput) (*model.Order, error) {
		return nil, domainErrors.ErrValidation
	}}
	body, _ := json.Marshal(dto.CheckoutRequest{PaymentMethod: "card"})
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Checkout, asRequester(model.Requester{UserID: "u-1"}), body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facades.OrderFacadeStub{}).List, asRequester(model.Requester{UserID: "u-1"}), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"forbidden", domainErrors.ErrForbidden, http.StatusForbidden},
		{"unknown status", domainErrors.ErrInvalidStatus, http.StatusBadRequest},
		{"terminal state", domainErrors.ErrValidation, http.StatusBadRequest},
		{"missing order", domainErrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facade := facades.OrderFacadeStub{TransitionOrderFn: func(ctx context.Context, req model.Requester, orderID, status string) (*model.Order, error) {
				if tc.err != nil {
					return nil, tc.err
				}
				return &model.Order{ID: orderID, Status: model.OrderStatus(status)}, nil
			}}
			body, _ := json.Marshal(dto.StatusRequest{Status: "approved"})
			setup := asRequester(model.Requester{UserID: "a-1", Role: model.RoleAdmin})
			resp := performRequest(t, http.MethodPut, "/orders/o-1/status", NewOrderHandler(facade).UpdateStatus, setup, body, jsonHeaders)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestInvoiceHandlerGet(t *testing.T) {
	view := &usecase.InvoiceView{
		InvoiceNumber: "INV-9",
		InvoiceDate:   "March 15, 2026",
		OrderNumber:   "ORD-9",
		Status:        "APPROVED",
		PaymentMethod: "CARD",
		BillTo:        usecase.InvoiceBillTo{Name: "Ann", Email: "ann@shop.io"},
		Lines:         []usecase.InvoiceLine{{Name: "Mug", Quantity: 2, Price: "20.00", Total: "40.00"}},
		Subtotal:      "40.00",
		Total:         "40.00",
	}
	facade := facades.InvoiceFacadeStub{InvoiceFn: func(context.Context, model.Requester, string) (*usecase.InvoiceView, error) {
		return view, nil
	}}
	setup := asRequester(model.Requester{UserID: "u-1"})

	resp := performRequest(t, http.MethodGet, "/orders/o-9/invoice", NewInvoiceHandler(facade).Get, setup, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var invoice dto.InvoiceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &invoice); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if invoice.InvoiceNumber != "INV-9" || invoice.Tax != "" {
		t.Fatalf("unexpected invoice: %+v", invoice)
	}
}

func TestInvoiceHandlerHTMLVariants(t *testing.T) {
	view := &usecase.InvoiceView{
		InvoiceNumber: "INV-9",
		OrderNumber:   "ORD-9",
		BillTo:        usecase.InvoiceBillTo{Name: "Ann", Email: "ann@shop.io"},
		Lines:         []usecase.InvoiceLine{{Name: "Mug", Quantity: 2, Price: "20.00", Total: "40.00"}},
		Subtotal:      "40.00",
		Shipping:      "5.00",
		Total:         "45.00",
	}
	facade := facades.InvoiceFacadeStub{InvoiceFn: func(context.Context, model.Requester, string) (*usecase.InvoiceView, error) {
		return view, nil
	}}
	setup := asRequester(model.Requester{UserID: "u-1"})

	inline := performRequest(t, http.MethodGet, "/orders/o-9/invoice/html", NewInvoiceHandler(facade).HTML, setup, nil, nil)
	if inline.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", inline.Code)
	}
	if ct := inline.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if inline.Header().Get("Content-Disposition") != "" {
		t.Fatal("inline variant must not set a disposition")
	}
	page := inline.Body.String()
	if !strings.Contains(page, "INV-9") || !strings.Contains(page, "Mug") {
		t.Fatalf("rendered page missing invoice data: %s", page)
	}
	if !strings.Contains(page, "Shipping") {
		t.Fatal("non-zero shipping must render a line")
	}

	download := performRequest(t, http.MethodGet, "/orders/o-9/invoice/download", NewInvoiceHandler(facade).Download, setup, nil, nil)
	if download.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", download.Code)
	}
	if cd := download.Header().Get("Content-Disposition"); cd != `attachment; filename="invoice-INV-9.html"` {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if download.Body.String() != page {
		t.Fatal("download must serve the same document as the inline view")
	}
}

func TestInvoiceHandlerZeroChargesOmitLines(t *testing.T) {
	view := &usecase.InvoiceView{
		InvoiceNumber: "INV-9",
		BillTo:        usecase.InvoiceBillTo{Name: "Ann"},
		Subtotal:      "10.00",
		Total:         "10.00",
	}
	facade := facades.InvoiceFacadeStub{InvoiceFn: func(context.Context, model.Requester, string) (*usecase.InvoiceView, error) {
		return view, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders/o-9/invoice/html", NewInvoiceHandler(facade).HTML, asRequester(model.Requester{UserID: "u-1"}), nil, nil)
	page := resp.Body.String()
	if strings.Contains(page, "Tax") || strings.Contains(page, "Shipping") {
		t.Fatalf("zero charges must not render lines: %s", page)
	}
}

func TestInvoiceHandlerNotFound(t *testing.T) {
	facade := facades.InvoiceFacadeStub{InvoiceFn: func(context.Context, model.Requester, string) (*usecase.InvoiceView, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/orders/o-9/invoice", NewInvoiceHandler(facade).Get, asRequester(model.Requester{UserID: "u-2"}), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestUserHandlerCreateAcceptsRoleShapes(t *testing.T) {
	for _, raw := range []string{
		`{"name":"Sam","email":"sam@shop.io","password":"pw","role":"support"}`,
		`{"name":"Sam","email":"sam@shop.io","password":"pw","role":{"name":"support"}}`,
	} {
		var gotRole model.Role
		facade := facades.DirectoryFacadeStub{CreateUserFn: func(ctx context.Context, input usecase.CreateUserInput) (*model.User, error) {
			gotRole = input.Role
			return &model.User{ID: "u-2", Role: input.Role}, nil
		}}
		resp := performRequest(t, http.MethodPost, "/users", NewUserHandler(facade).Create, nil, []byte(raw), jsonHeaders)
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d for %s", resp.Code, raw)
		}
		if gotRole != model.RoleSupport {
			t.Fatalf("expected support role, got %q for %s", gotRole, raw)
		}
	}
}

func TestProductHandlerGetNotFound(t *testing.T) {
	facade := facades.CatalogFacadeStub{ProductFn: func(context.Context, string) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/products/p-9", NewProductHandler(facade).Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestActivityHandlerRecent(t *testing.T) {
	var gotLimit int
	facade := facades.ActivityFacadeStub{RecentActivityFn: func(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
		gotLimit = limit
		return []model.ActivityEntry{{ID: 1, Action: "status_changed", Entity: "order", EntityID: "o-1"}}, nil
	}}
	router := gin.New()
	router.GET("/activity", NewActivityHandler(facade).Recent)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/activity?limit=25", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotLimit != 25 {
		t.Fatalf("expected limit 25, got %d", gotLimit)
	}
}
