package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Label         string             `bson:"label" json:"label"`
	FullName      string             `bson:"full_name" json:"fullName"`
	StreetAddress string             `bson:"street_address" json:"streetAddress"`
	City          string             `bson:"city" json:"city"`
	State         string             `bson:"state" json:"state"`
	ZipCode       string             `bson:"zip_code" json:"zipCode"`
	PhoneNumber   string             `bson:"phone_number" json:"phoneNumber"`
	IsDefault     bool               `bson:"is_default" json:"isDefault"`
}

// User mirrors the identity provider's record, keyed by the provider's
// external id. Addresses and wishlist are owned by this service.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ExternalID string               `bson:"external_id" json:"externalId"`
	Email      string               `bson:"email" json:"email"`
	Name       string               `bson:"name" json:"name"`
	ImageURL   string               `bson:"image_url" json:"imageUrl"`
	Addresses  []Address            `bson:"addresses" json:"addresses"`
	Wishlist   []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	CreatedAt  time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updatedAt"`
}

// InWishlist reports whether productID is already wishlisted.
func (u User) InWishlist(productID primitive.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}
