package repository

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
)

// ActivityRepository stores order activity records.
type ActivityRepository interface {
	Record(ctx context.Context, entry model.ActivityEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.ActivityEntry, error)
}
