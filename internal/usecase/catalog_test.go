package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/test"
)

func TestCatalogCreate(t *testing.T) {
	products := test.NewProductRepositoryStub()
	uc := NewCatalogUseCase(products)

	p, err := uc.Create(context.Background(), model.Product{Name: "  Mug ", Price: 9.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Mug" {
		t.Errorf("name not trimmed: %q", p.Name)
	}

	cases := []struct {
		name    string
		product model.Product
	}{
		{"empty name", model.Product{Price: 1}},
		{"negative price", model.Product{Name: "Mug", Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tc.product); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCatalogUpdateAndDelete(t *testing.T) {
	products := test.NewProductRepositoryStub()
	products.Products["p-1"] = &model.Product{ID: "p-1", Name: "Mug", Price: 9.5}
	uc := NewCatalogUseCase(products)

	p, err := uc.Update(context.Background(), model.Product{ID: "p-1", Name: "Big Mug", Price: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Big Mug" || p.Price != 12 {
		t.Errorf("unexpected product: %+v", p)
	}

	if _, err := uc.Update(context.Background(), model.Product{ID: "p-9", Name: "X"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := uc.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Get(context.Background(), "p-1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestActivityRecent(t *testing.T) {
	activity := &test.ActivityRepositoryStub{}
	for i := 0; i < 60; i++ {
		activity.Entries = append(activity.Entries, model.ActivityEntry{ID: int64(i)})
	}
	uc := NewActivityUseCase(activity)

	entries, err := uc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 50 {
		t.Errorf("non-positive limit defaults to 50, got %d", len(entries))
	}

	entries, err = uc.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("limit not honored, got %d", len(entries))
	}

	entries, err = uc.Recent(context.Background(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 50 {
		t.Errorf("oversized limit collapses to 50, got %d", len(entries))
	}
}
