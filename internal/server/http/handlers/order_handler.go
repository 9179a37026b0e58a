package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/server/http/dto"
)

// OrderHandler manages the product order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.ToOrderProducts(), model.DeliveryMethod(req.Delivery), req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder),
			errors.Is(err, domainErrors.ErrInvalidQuantity),
			errors.Is(err, domainErrors.ErrInvalidDelivery):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrder(*order))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	status := model.OrderStatus(req.Status)
	if !model.ValidOrderStatus(status) {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		orderLifecycleStatus(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		orderLifecycleStatus(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	respondOrders(c, h.facade.Orders(c.Request.Context()))
}

// Active handles GET /api/orders/active.
func (h *OrderHandler) Active(c *gin.Context) {
	respondOrders(c, h.facade.ActiveOrders(c.Request.Context()))
}

// Past handles GET /api/orders/past.
func (h *OrderHandler) Past(c *gin.Context) {
	respondOrders(c, h.facade.PastOrders(c.Request.Context()))
}

func respondOrders(c *gin.Context, orders []model.Order) {
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.FromOrder(o))
	}
	c.JSON(http.StatusOK, response)
}

func orderLifecycleStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
