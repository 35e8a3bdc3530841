package service

import (
	"context"

	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/internal/dto"
	"github.com/shopright/backend/internal/repository"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewServiceImpl struct {
	trx         repository.TrxHandler
	reviewRepo  repository.ReviewRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func CreateReviewService(trx repository.TrxHandler, reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) ReviewService {
	return &ReviewServiceImpl{
		trx:         trx,
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// AddReview upserts the caller's review of a product and recomputes the
// product's rating aggregate in the same transaction. Eligibility is checked
// up front: the order must belong to the caller, be delivered, and contain the
// product.
func (s *ReviewServiceImpl) AddReview(ctx context.Context, user domain.User, req dto.ReviewRequest) (review domain.Review, err error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return review, errs.ErrClient
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return review, errs.ErrClient
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if order.ExternalID != user.ExternalID {
		return review, errs.ErrForbidden
	}

	if order.Status != domain.OrderStatusDelivered {
		return review, errs.ErrOrderNotDelivered
	}

	if !order.ContainsProduct(productID) {
		return review, errs.ErrProductNotInOrder
	}

	err = s.trx.HandleTrx(ctx, func(trxCtx context.Context) error {
		upserted, err := s.reviewRepo.UpsertReview(trxCtx, domain.Review{
			ProductID: productID,
			UserID:    user.ID,
			OrderID:   orderID,
			Rating:    req.Rating,
		})
		if err != nil {
			return err
		}
		review = upserted

		return s.recomputeProductRating(trxCtx, productID)
	})
	if err != nil {
		return domain.Review{}, err
	}

	return review, nil
}

// DeleteReview removes the caller's own review and recomputes the product
// aggregate from the reviews that remain.
func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, user domain.User, reviewID string) (err error) {
	id, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return errs.ErrClient
	}

	review, err := s.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return
	}

	if review.UserID != user.ID {
		return errs.ErrForbidden
	}

	return s.trx.HandleTrx(ctx, func(trxCtx context.Context) error {
		if err := s.reviewRepo.DeleteReview(trxCtx, id); err != nil {
			return err
		}

		return s.recomputeProductRating(trxCtx, review.ProductID)
	})
}

// recomputeProductRating re-reads every review of the product and writes the
// aggregate back, keeping average_rating and total_reviews in lockstep with
// the review set. Must run inside the caller's transaction.
func (s *ReviewServiceImpl) recomputeProductRating(ctx context.Context, productID primitive.ObjectID) error {
	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return err
	}

	averageRating, totalReviews := domain.AggregateRatings(reviews)

	return s.productRepo.SetProductRating(ctx, productID, averageRating, totalReviews)
}
