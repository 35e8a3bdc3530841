package dto

type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int64   `json:"quantity" validate:"required,gte=1"`
	Image     string  `json:"image"`
}

type ShippingAddressRequest struct {
	FullName      string `json:"fullName" validate:"required"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
}

type PaymentResultRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type OrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" validate:"required"`
	PaymentResult   PaymentResultRequest   `json:"paymentResult" validate:"required"`
	TotalPrice      float64                `json:"totalPrice" validate:"required,gt=0"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
