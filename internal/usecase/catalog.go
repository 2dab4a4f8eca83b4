package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
)

// CatalogUseCase is routine product CRUD.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// Create adds a catalog entry.
func (u *CatalogUseCase) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price < 0 {
		return nil, domainErrors.ErrValidation
	}
	return u.products.Create(ctx, product)
}

// Get fetches one product.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns the catalog ordered by name.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Update replaces product fields.
func (u *CatalogUseCase) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price < 0 {
		return nil, domainErrors.ErrValidation
	}
	return u.products.Update(ctx, product)
}

// Delete removes a product.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}
