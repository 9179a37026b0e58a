package dto

import (
	"time"

	"github.com/coiffly/coiffly/internal/domain/model"
)

// OrderProductPayload is one cart line.
type OrderProductPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PlaceOrderRequest carries the cart at checkout.
type PlaceOrderRequest struct {
	Products []OrderProductPayload `json:"products"`
	Delivery string                `json:"delivery"`
	Address  string                `json:"address,omitempty"`
}

// OrderStatusRequest moves an order along the delivery lifecycle.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse represents a placed order.
type OrderResponse struct {
	ID            string                `json:"id"`
	Products      []OrderProductPayload `json:"products"`
	Delivery      string                `json:"delivery"`
	Address       string                `json:"address,omitempty"`
	Subtotal      float64               `json:"subtotal"`
	DeliveryPrice float64               `json:"delivery_price"`
	Total         float64               `json:"total"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// ToOrderProducts converts cart lines into their domain form.
func (r PlaceOrderRequest) ToOrderProducts() []model.OrderProduct {
	products := make([]model.OrderProduct, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, model.OrderProduct(p))
	}
	return products
}

// FromOrder converts the domain order into its transport form.
func FromOrder(order model.Order) OrderResponse {
	products := make([]OrderProductPayload, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, OrderProductPayload(p))
	}
	return OrderResponse{
		ID:            order.ID,
		Products:      products,
		Delivery:      string(order.Delivery),
		Address:       order.Address,
		Subtotal:      order.Subtotal,
		DeliveryPrice: order.DeliveryPrice,
		Total:         order.Total,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
