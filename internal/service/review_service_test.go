package service

import (
	"context"
	"testing"

	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReviewServiceFixture() (ReviewService, *memStore) {
	store := newMemStore()
	svc := CreateReviewService(
		&fakeTrxHandler{store: store},
		&fakeReviewRepo{store: store},
		&fakeOrderRepo{store: store},
		&fakeProductRepo{store: store},
	)
	return svc, store
}

func seedDeliveredOrder(store *memStore, user domain.User, product domain.Product) domain.Order {
	order := domain.Order{
		ID:         primitive.NewObjectID(),
		UserID:     user.ID,
		ExternalID: user.ExternalID,
		Status:     domain.OrderStatusDelivered,
		OrderItems: []domain.OrderItem{{ProductID: product.ID, Quantity: 1}},
	}
	store.orders = append(store.orders, order)
	return order
}

func TestAddReview(t *testing.T) {
	svc, store := newReviewServiceFixture()
	user := testUser()
	product := store.seedProduct(10)
	order := seedDeliveredOrder(store, user, product)

	review, err := svc.AddReview(context.Background(), user, dto.ReviewRequest{
		ProductID: product.ID.Hex(),
		OrderID:   order.ID.Hex(),
		Rating:    4,
	})
	require.NoError(t, err)

	assert.False(t, review.ID.IsZero())
	assert.Equal(t, int64(4), review.Rating)
	assert.Equal(t, user.ID, review.UserID)

	assert.Equal(t, 4.0, store.products[product.ID].AverageRating)
	assert.Equal(t, int64(1), store.products[product.ID].TotalReviews)
}

func TestAddReviewPreconditions(t *testing.T) {
	svc, store := newReviewServiceFixture()
	user := testUser()
	product := store.seedProduct(10)
	otherProduct := store.seedProduct(10)

	delivered := seedDeliveredOrder(store, user, product)

	pending := seedDeliveredOrder(store, user, product)
	store.orders[len(store.orders)-1].Status = domain.OrderStatusPending

	someoneElses := seedDeliveredOrder(store, domain.User{ID: primitive.NewObjectID(), ExternalID: "ext-user-2"}, product)

	testCases := []struct {
		name        string
		request     dto.ReviewRequest
		expectedErr error
	}{
		{
			name:        "malformed product id",
			request:     dto.ReviewRequest{ProductID: "nope", OrderID: delivered.ID.Hex(), Rating: 5},
			expectedErr: errs.ErrClient,
		},
		{
			name:        "malformed order id",
			request:     dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: "nope", Rating: 5},
			expectedErr: errs.ErrClient,
		},
		{
			name:        "order not found",
			request:     dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: primitive.NewObjectID().Hex(), Rating: 5},
			expectedErr: errs.ErrOrderNotFound,
		},
		{
			name:        "order owned by someone else",
			request:     dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: someoneElses.ID.Hex(), Rating: 5},
			expectedErr: errs.ErrForbidden,
		},
		{
			name:        "order not delivered",
			request:     dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: pending.ID.Hex(), Rating: 5},
			expectedErr: errs.ErrOrderNotDelivered,
		},
		{
			name:        "product not in order",
			request:     dto.ReviewRequest{ProductID: otherProduct.ID.Hex(), OrderID: delivered.ID.Hex(), Rating: 5},
			expectedErr: errs.ErrProductNotInOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddReview(context.Background(), user, tc.request)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Empty(t, store.reviews)
		})
	}
}

func TestAddReviewReplacesExisting(t *testing.T) {
	svc, store := newReviewServiceFixture()
	user := testUser()
	product := store.seedProduct(10)
	order := seedDeliveredOrder(store, user, product)

	req := dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: order.ID.Hex(), Rating: 2}
	_, err := svc.AddReview(context.Background(), user, req)
	require.NoError(t, err)

	req.Rating = 5
	review, err := svc.AddReview(context.Background(), user, req)
	require.NoError(t, err)

	// still one review per (product, user); the rating was replaced
	require.Len(t, store.reviews, 1)
	assert.Equal(t, int64(5), review.Rating)
	assert.Equal(t, 5.0, store.products[product.ID].AverageRating)
	assert.Equal(t, int64(1), store.products[product.ID].TotalReviews)
}

func TestAddReviewAggregatesAcrossUsers(t *testing.T) {
	svc, store := newReviewServiceFixture()
	product := store.seedProduct(10)

	first := testUser()
	second := domain.User{ID: primitive.NewObjectID(), ExternalID: "ext-user-2"}

	firstOrder := seedDeliveredOrder(store, first, product)
	secondOrder := seedDeliveredOrder(store, second, product)

	_, err := svc.AddReview(context.Background(), first, dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: firstOrder.ID.Hex(), Rating: 4})
	require.NoError(t, err)

	_, err = svc.AddReview(context.Background(), second, dto.ReviewRequest{ProductID: product.ID.Hex(), OrderID: secondOrder.ID.Hex(), Rating: 2})
	require.NoError(t, err)

	assert.Equal(t, 3.0, store.products[product.ID].AverageRating)
	assert.Equal(t, int64(2), store.products[product.ID].TotalReviews)
}

func TestAddReviewRollsBackWhenProductGone(t *testing.T) {
	svc, store := newReviewServiceFixture()
	user := testUser()
	product := store.seedProduct(10)
	order := seedDeliveredOrder(store, user, product)

	// product deleted after the order was delivered; the aggregate write
	// fails and the upserted review must not survive
	delete(store.products, product.ID)

	_, err := svc.AddReview(context.Background(), user, dto.ReviewRequest{
		ProductID: product.ID.Hex(),
		OrderID:   order.ID.Hex(),
		Rating:    4,
	})
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
	assert.Empty(t, store.reviews)
}

func TestDeleteReview(t *testing.T) {
	svc, store := newReviewServiceFixture()
	user := testUser()
	product := store.seedProduct(10)
	order := seedDeliveredOrder(store, user, product)

	review, err := svc.AddReview(context.Background(), user, dto.ReviewRequest{
		ProductID: product.ID.Hex(),
		OrderID:   order.ID.Hex(),
		Rating:    4,
	})
	require.NoError(t, err)

	t.Run("someone else cannot delete it", func(t *testing.T) {
		stranger := domain.User{ID: primitive.NewObjectID(), ExternalID: "ext-user-2"}
		err := svc.DeleteReview(context.Background(), stranger, review.ID.Hex())
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Len(t, store.reviews, 1)
	})

	t.Run("owner deletes and the aggregate resets", func(t *testing.T) {
		err := svc.DeleteReview(context.Background(), user, review.ID.Hex())
		require.NoError(t, err)

		assert.Empty(t, store.reviews)
		assert.Equal(t, 0.0, store.products[product.ID].AverageRating)
		assert.Equal(t, int64(0), store.products[product.ID].TotalReviews)
	})

	t.Run("deleting a missing review", func(t *testing.T) {
		err := svc.DeleteReview(context.Background(), user, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, errs.ErrReviewNotFound)
	})
}
