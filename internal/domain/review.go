package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review holds a single user's rating of a product. The (product_id, user_id)
// pair is unique; writes go through an upsert keyed on it.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	OrderID   primitive.ObjectID `bson:"order_id" json:"orderId"`
	Rating    int64              `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// AggregateRatings recomputes a product's rating aggregate from the full review
// set. A full recompute instead of a running sum: it cannot drift under
// concurrent edits and deletes, and review volume per product is bounded.
func AggregateRatings(reviews []Review) (averageRating float64, totalReviews int64) {
	if len(reviews) == 0 {
		return 0, 0
	}

	var sum int64
	for _, review := range reviews {
		sum += review.Rating
	}

	return float64(sum) / float64(len(reviews)), int64(len(reviews))
}
