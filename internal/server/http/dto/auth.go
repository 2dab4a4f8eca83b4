package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/usecase"
)

// RegisterRequest describes the self-registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GuestCartItem is one line of the anonymous cart a client submits at
// login.
type GuestCartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// LoginRequest describes the login payload. GuestCart carries the
// client-held anonymous cart to be folded into the server cart.
type LoginRequest struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	GuestCart []GuestCartItem `json:"guestCart"`
}

// CartItems converts the guest cart lines to domain items.
func (r LoginRequest) CartItems() []model.CartItem {
	if len(r.GuestCart) == 0 {
		return nil
	}
	items := make([]model.CartItem, 0, len(r.GuestCart))
	for _, item := range r.GuestCart {
		items = append(items, model.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items
}

// MergeFailureResponse reports one guest cart line that was not merged.
type MergeFailureResponse struct {
	ProductID string `json:"productId,omitempty"`
	Reason    string `json:"reason"`
}

// LoginResponse carries the token plus the guest cart merge outcome.
// ClearGuestCart tells the client to drop its local copy.
type LoginResponse struct {
	Token          string                 `json:"token"`
	Merged         int                    `json:"merged"`
	MergeFailures  []MergeFailureResponse `json:"mergeFailures,omitempty"`
	ClearGuestCart bool                   `json:"clearGuestCart"`
}

// NewLoginResponse builds the login response from a merge report.
func NewLoginResponse(token string, report usecase.MergeReport) LoginResponse {
	resp := LoginResponse{Token: token, Merged: report.Merged, ClearGuestCart: true}
	for _, failure := range report.Failures {
		resp.MergeFailures = append(resp.MergeFailures, MergeFailureResponse{
			ProductID: failure.ProductID,
			Reason:    failure.Reason,
		})
	}
	return resp
}

// RegisterResponse carries the token issued on registration.
type RegisterResponse struct {
	Token string `json:"token"`
}

// RoleField accepts a role either as a plain string or as an object
// carrying the role under a name-like key. Older clients send the
// object form.
type RoleField struct {
	Value string
}

// UnmarshalJSON implements the two accepted shapes.
func (f *RoleField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Name string `json:"name"`
			Role string `json:"role"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Name != "" {
			f.Value = obj.Name
		} else {
			f.Value = obj.Role
		}
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// Role resolves the canonical role carried by the field.
func (f RoleField) Role() model.Role {
	return model.ParseRole(f.Value)
}
