package usecase

import (
	"context"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
)

// ActivityUseCase exposes recent order activity to staff.
type ActivityUseCase struct {
	activity repository.ActivityRepository
}

// NewActivityUseCase constructs ActivityUseCase.
func NewActivityUseCase(activity repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activity: activity}
}

// Recent returns the latest recorded entries.
func (u *ActivityUseCase) Recent(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.activity.ListRecent(ctx, limit)
}
