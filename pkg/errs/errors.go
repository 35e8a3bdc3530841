package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotLoggedIn         = errors.New("Unauthorized access")
	ErrForbidden           = errors.New("Forbidden access")
	ErrNotFound            = errors.New("Resource not found")
	ErrProductNotFound     = errors.New("Product not found")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrReviewNotFound      = errors.New("Review not found")
	ErrCartNotFound        = errors.New("Cart not found")
	ErrUserNotFound        = errors.New("User not found")
	ErrInsufficientStock   = errors.New("Insufficient stock")
	ErrOrderNotDelivered   = errors.New("Can only review delivered orders")
	ErrProductNotInOrder   = errors.New("Product not found in this order")
	ErrAlreadyInWishlist   = errors.New("Product already in wishlist")
	ErrNotInWishlist       = errors.New("Product not found in wishlist")
	ErrItemNotInCart       = errors.New("Item not found in cart")
	ErrInvalidOrderStatus  = errors.New("Invalid status")
	ErrTooManyImages       = errors.New("Maximum 3 images allowed")
	ErrImageRequired       = errors.New("At least one image is required")
	ErrConflict            = errors.New("Conflicting record found")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrForbidden:          ErrStatusNoPermission,
	ErrNotFound:           ErrStatusNotFound,
	ErrProductNotFound:    ErrStatusNotFound,
	ErrOrderNotFound:      ErrStatusNotFound,
	ErrReviewNotFound:     ErrStatusNotFound,
	ErrCartNotFound:       ErrStatusNotFound,
	ErrUserNotFound:       ErrStatusNotFound,
	ErrInsufficientStock:  ErrStatusClient,
	ErrOrderNotDelivered:  ErrStatusClient,
	ErrProductNotInOrder:  ErrStatusClient,
	ErrAlreadyInWishlist:  ErrStatusClient,
	ErrNotInWishlist:      ErrStatusClient,
	ErrItemNotInCart:      ErrStatusNotFound,
	ErrInvalidOrderStatus: ErrStatusClient,
	ErrTooManyImages:      ErrStatusClient,
	ErrImageRequired:      ErrStatusClient,
	ErrConflict:           ErrStatusConflict,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
