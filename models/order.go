package models

import "time"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every status an order may hold. Transitions between
// them are unrestricted; only membership in this set is enforced.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is immutable after creation except for Status. Fees and total are
// fixed at creation time and never recomputed.
type Order struct {
	ID              string      `bson:"_id" json:"id"`
	Email           string      `bson:"email" json:"email"` // weak back-reference to the placing user
	Items           []CartItem  `bson:"items" json:"items"` // value snapshot of the cart
	Address         Address     `bson:"address" json:"address"`
	AdditionalNotes string      `bson:"additionalNotes,omitempty" json:"additionalNotes,omitempty"`
	PaymentMethod   string      `bson:"paymentMethod" json:"paymentMethod"`
	Subtotal        float64     `bson:"subtotal" json:"subtotal"`
	DeliveryFee     float64     `bson:"deliveryFee" json:"deliveryFee"`
	ServiceFee      float64     `bson:"serviceFee" json:"serviceFee"`
	Total           float64     `bson:"total" json:"total"`
	Status          OrderStatus `bson:"status" json:"status"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
}
