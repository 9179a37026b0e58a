package model

import "time"

// OrderStatus describes the delivery lifecycle of a product order.
type OrderStatus string

const (
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// DeliveryMethod tells how the order reaches the client.
type DeliveryMethod string

const (
	DeliveryRelay DeliveryMethod = "relay"
	DeliveryHome  DeliveryMethod = "home"
)

// deliveryChain is the linear happy path of an order.
var deliveryChain = []OrderStatus{
	OrderStatusPreparing,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// CanTransitionOrder reports whether an order may move between statuses.
// Cancellation is reachable from any non-terminal status; the delivery
// chain only moves forward. Writing the same status again is allowed.
func CanTransitionOrder(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if IsTerminalOrderStatus(from) {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	fromIdx, toIdx := deliveryIndex(from), deliveryIndex(to)
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	return toIdx > fromIdx
}

// NextDeliveryStatus returns the following step of the delivery chain and
// whether one exists.
func NextDeliveryStatus(s OrderStatus) (OrderStatus, bool) {
	idx := deliveryIndex(s)
	if idx < 0 || idx+1 >= len(deliveryChain) {
		return "", false
	}
	return deliveryChain[idx+1], true
}

// IsTerminalOrderStatus reports whether no further transitions exist.
func IsTerminalOrderStatus(s OrderStatus) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ValidOrderStatus reports whether the value belongs to the enum.
func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderStatusCancelled || deliveryIndex(s) >= 0
}

func deliveryIndex(s OrderStatus) int {
	for i, st := range deliveryChain {
		if st == s {
			return i
		}
	}
	return -1
}

// OrderProduct is a line item of an order.
type OrderProduct struct {
	ID       string
	Name     string
	Image    string
	Price    float64
	Quantity int
}

// Order aggregates a non-empty sequence of products bought together.
type Order struct {
	ID            string
	Products      []OrderProduct
	Delivery      DeliveryMethod
	Address       string
	Subtotal      float64
	DeliveryPrice float64
	Total         float64
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
