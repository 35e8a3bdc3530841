package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopright/backend/internal/domain"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) UpsertReview(ctx context.Context, data domain.Review) (review domain.Review, err error) {
	now := time.Now()

	filter := bson.D{
		{Key: "product_id", Value: data.ProductID},
		{Key: "user_id", Value: data.UserID},
	}

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "rating", Value: data.Rating},
			{Key: "order_id", Value: data.OrderID},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "product_id", Value: data.ProductID},
			{Key: "user_id", Value: data.UserID},
			{Key: "created_at", Value: now},
		}},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	err = r.db.Collection("reviews").FindOneAndUpdate(ctx, filter, update, opts).Decode(&review)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertReview").Msg("")
		return
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewByID(ctx context.Context, id primitive.ObjectID) (review domain.Review, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("reviews").FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return review, errs.ErrReviewNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewByID").Msg("")

		return review, err
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Review, err error) {
	filter := bson.D{{Key: "product_id", Value: productID}}

	cursor, err := r.db.Collection("reviews").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByOrderIDs(ctx context.Context, orderIDs []primitive.ObjectID) (data []domain.Review, err error) {
	filter := bson.D{{Key: "order_id", Value: bson.D{{Key: "$in", Value: orderIDs}}}}

	cursor, err := r.db.Collection("reviews").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByOrderIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByOrderIDs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) DeleteReview(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.db.Collection("reviews").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrReviewNotFound
	}

	return
}
