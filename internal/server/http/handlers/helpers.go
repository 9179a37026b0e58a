package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/coiffly/coiffly/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated profile identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
