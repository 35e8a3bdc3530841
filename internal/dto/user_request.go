package dto

type AddressRequest struct {
	Label         string `json:"label"`
	FullName      string `json:"fullName" validate:"required"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
	PhoneNumber   string `json:"phoneNumber"`
	IsDefault     bool   `json:"isDefault"`
}

// UpdateAddressRequest carries only the fields the caller wants changed.
type UpdateAddressRequest struct {
	Label         *string `json:"label"`
	FullName      *string `json:"fullName"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	PhoneNumber   *string `json:"phoneNumber"`
	IsDefault     *bool   `json:"isDefault"`
}

type WishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}
