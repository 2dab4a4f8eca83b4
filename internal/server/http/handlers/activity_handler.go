package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopline/storefront/internal/server/http/dto"
)

// ActivityHandler serves the recent order activity feed.
type ActivityHandler struct {
	facade ActivityFacade
}

// NewActivityHandler creates ActivityHandler instance.
func NewActivityHandler(facade ActivityFacade) *ActivityHandler {
	return &ActivityHandler{facade: facade}
}

// Recent handles GET /api/activity.
func (h *ActivityHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.facade.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewActivityEntryResponses(entries))
}
