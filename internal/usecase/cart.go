package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
)

// CartUseCase manages server-held carts and folds anonymous carts in
// at login time.
type CartUseCase struct {
	carts  repository.CartRepository
	logger *slog.Logger
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, logger *slog.Logger) *CartUseCase {
	return &CartUseCase{carts: carts, logger: logger}
}

// AddItem puts a product into the cart, coalescing quantity with any
// existing entry for the same product.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if productID == "" || quantity < 1 {
		return domainErrors.ErrValidation
	}
	return u.carts.AddItem(ctx, userID, productID, quantity)
}

// Items returns the cart content with product snapshots.
func (u *CartUseCase) Items(ctx context.Context, userID string) ([]model.CartEntry, error) {
	return u.carts.Items(ctx, userID)
}

// UpdateItem replaces the stored quantity for a product.
func (u *CartUseCase) UpdateItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 1 {
		return domainErrors.ErrValidation
	}
	return u.carts.UpdateItem(ctx, userID, productID, quantity)
}

// RemoveItem drops a product from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) error {
	return u.carts.RemoveItem(ctx, userID, productID)
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, userID string) error {
	return u.carts.Clear(ctx, userID)
}

// MergeFailure describes one guest cart item that could not be merged.
type MergeFailure struct {
	ProductID string
	Reason    string
}

// MergeReport summarizes a guest cart merge attempt.
type MergeReport struct {
	Merged   int
	Failures []MergeFailure
}

// MergeGuestCart folds an anonymous client-held cart into the user's
// server cart. Items merge independently: one failing item never stops
// the rest. Failures are reported back and logged as warnings, never as
// an error for the login flow; the client discards its local copy
// regardless of the outcome.
func (u *CartUseCase) MergeGuestCart(ctx context.Context, userID string, items []model.CartItem) MergeReport {
	var report MergeReport
	for _, item := range items {
		if item.ProductID == "" {
			report.Failures = append(report.Failures, MergeFailure{Reason: "missing product id"})
			continue
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		if err := u.carts.AddItem(ctx, userID, item.ProductID, quantity); err != nil {
			u.logger.Warn("guest cart item merge failed",
				slog.String("product_id", item.ProductID),
				slog.String("error", err.Error()),
			)
			report.Failures = append(report.Failures, MergeFailure{ProductID: item.ProductID, Reason: err.Error()})
			continue
		}
		report.Merged++
	}
	return report
}
