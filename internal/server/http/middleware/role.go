package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// RoleResolver reports the marketplace role of a profile.
type RoleResolver interface {
	RoleOf(ctx context.Context, userID int64) (model.Role, error)
}

// RoleRequired allows only profiles holding one of the given roles. Must run
// after AuthRequired.
func RoleRequired(resolver RoleResolver, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		userID, ok := val.(int64)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		role, err := resolver.RoleOf(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}
