package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/server/http/middleware"
)

// CurrentRequester extracts the authenticated requester from context.
func CurrentRequester(c *gin.Context) model.Requester {
	val, ok := c.Get(middleware.RequesterContextKey)
	if !ok {
		return model.Requester{}
	}
	requester, _ := val.(model.Requester)
	return requester
}
