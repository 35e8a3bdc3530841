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
)

type MongoDBCartRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBCartRepository(db *mongo.Database) CartRepository {
	return &MongoDBCartRepositoryImpl{db: db}
}

func (r *MongoDBCartRepositoryImpl) AddCart(ctx context.Context, data domain.Cart) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now
	if data.Items == nil {
		data.Items = []domain.CartItem{}
	}

	result, err := r.db.Collection("carts").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCart").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCartRepositoryImpl) GetCartByExternalID(ctx context.Context, externalID string) (cart domain.Cart, err error) {
	filter := bson.D{{Key: "external_id", Value: externalID}}

	err = r.db.Collection("carts").FindOne(ctx, filter).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return cart, errs.ErrCartNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartByExternalID").Msg("")

		return cart, err
	}

	return cart, nil
}

func (r *MongoDBCartRepositoryImpl) SetCartItems(ctx context.Context, id primitive.ObjectID, items []domain.CartItem) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	if items == nil {
		items = []domain.CartItem{}
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "items", Value: items},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := r.db.Collection("carts").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetCartItems").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrCartNotFound
	}

	return
}
