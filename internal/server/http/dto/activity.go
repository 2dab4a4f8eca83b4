package dto

import (
	"time"

	"github.com/shopline/storefront/internal/domain/model"
)

// ActivityEntryResponse is one recorded order event.
type ActivityEntryResponse struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	CreatedAt string `json:"createdAt"`
}

// NewActivityEntryResponses converts activity entries to the wire shape.
func NewActivityEntryResponses(entries []model.ActivityEntry) []ActivityEntryResponse {
	result := make([]ActivityEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ActivityEntryResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Action:    entry.Action,
			Entity:    entry.Entity,
			EntityID:  entry.EntityID,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
