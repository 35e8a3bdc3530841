package dto

type ReviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	OrderID   string `json:"orderId" validate:"required"`
	Rating    int64  `json:"rating" validate:"required,gte=1,lte=5"`
}
