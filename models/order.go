package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Orders start as pending; transitions happen through the
// admin status endpoint.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods accepted on order creation.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// Order represents a customer order. Subtotal, tax and total are always
// derived server-side from the items; client-sent values are ignored.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID         string             `bson:"orderId" json:"order_id"`
	UserID          primitive.ObjectID `bson:"userId" json:"user_id"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Tax             float64            `bson:"tax" json:"tax"`
	Total           float64            `bson:"total" json:"total"`
	Status          string             `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"paymentMethod" json:"payment_method"`
	ShippingAddress *ShippingAddress   `bson:"shippingAddress,omitempty" json:"shipping_address,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
}

// OrderItem represents one product line within an order
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// ShippingAddress is free-text delivery information attached to an order
type ShippingAddress struct {
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postal_code,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// OrderStatusInput is used by the admin status-update endpoint
type OrderStatusInput struct {
	Status string `json:"status"`
}
