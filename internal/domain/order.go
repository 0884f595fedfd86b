package domain

import "time"

// OrderStatus is a stage in the forward-only delivery pipeline.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// OrderStatuses lists the delivery stages in pipeline order.
var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

// Index returns the position of the status in the pipeline, or -1 for an
// unknown status.
func (s OrderStatus) Index() int {
	for i, st := range OrderStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the status is one of the pipeline stages.
func (s OrderStatus) Valid() bool {
	return s.Index() >= 0
}

// Terminal reports whether no further transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}

// CartItem is a product snapshot plus a quantity taken at the moment the item
// entered a cart. Quantity is always at least 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is the line total at the effective price.
func (c CartItem) Subtotal() int64 {
	return c.EffectivePrice() * int64(c.Quantity)
}

// Order is an immutable purchase record. Only the status field ever changes
// after placement, and only forward through the pipeline.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Items           []CartItem  `json:"items"`
	Total           int64       `json:"total"`
	Status          OrderStatus `json:"status"`
	Date            time.Time   `json:"date"`
	ShippingAddress string      `json:"shipping_address"`
	Province        Province    `json:"province"`
}

// Shipping surcharges in dinars. Baghdad is cheaper to reach.
const (
	ShippingBaghdad = 5000
	ShippingOther   = 8000
)

// ShippingFee returns the delivery surcharge for a province.
func ShippingFee(p Province) int64 {
	if p == ProvinceBaghdad {
		return ShippingBaghdad
	}
	return ShippingOther
}
