package dto

import "github.com/shopline/storefront/internal/domain/model"

// CartItemRequest describes add/update cart payloads.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartEntryResponse is one cart line with its product snapshot.
type CartEntryResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// CartResponse is the full cart content.
type CartResponse struct {
	Items []CartEntryResponse `json:"items"`
}

// NewCartResponse converts cart entries to the wire shape.
func NewCartResponse(entries []model.CartEntry) CartResponse {
	resp := CartResponse{Items: make([]CartEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Items = append(resp.Items, CartEntryResponse{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Price:     entry.Price,
			Quantity:  entry.Quantity,
			Total:     entry.Price * float64(entry.Quantity),
		})
	}
	return resp
}
