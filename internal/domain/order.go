package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
	Image     string             `bson:"image" json:"image"`
}

type ShippingAddress struct {
	FullName      string `bson:"full_name" json:"fullName"`
	StreetAddress string `bson:"street_address" json:"streetAddress"`
	City          string `bson:"city" json:"city"`
	State         string `bson:"state" json:"state"`
	ZipCode       string `bson:"zip_code" json:"zipCode"`
	PhoneNumber   string `bson:"phone_number" json:"phoneNumber"`
}

// PaymentResult is a stub recorded as supplied by the client; no payment
// processing happens in this service.
type PaymentResult struct {
	ID     string `bson:"id" json:"id"`
	Status string `bson:"status" json:"status"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	ExternalID      string             `bson:"external_id" json:"-"`
	OrderNumber     string             `bson:"order_number" json:"orderNumber"`
	OrderItems      []OrderItem        `bson:"order_items" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shippingAddress"`
	PaymentResult   PaymentResult      `bson:"payment_result" json:"paymentResult"`
	TotalPrice      float64            `bson:"total_price" json:"totalPrice"`
	Status          string             `bson:"status" json:"status"`
	ShippedAt       *time.Time         `bson:"shipped_at,omitempty" json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time         `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ContainsProduct reports whether the given product appears among the order's
// line items.
func (o Order) ContainsProduct(productID primitive.ObjectID) bool {
	for _, item := range o.OrderItems {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}
