package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/server/http/dto"
	"github.com/coiffly/coiffly/internal/server/http/middleware"
)

// AuthHandler processes registration, login and role selection.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Login, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// SelectRole handles POST /api/user/role.
func (h *AuthHandler) SelectRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	if err := h.facade.AssignRole(c.Request.Context(), userID, model.Role(req.Role)); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRole):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
