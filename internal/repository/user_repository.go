package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopright/backend/internal/domain"
	pkgdto "github.com/shopright/backend/pkg/dto"
	"github.com/shopright/backend/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) UpsertUser(ctx context.Context, data domain.User) (err error) {
	now := time.Now()

	filter := bson.D{{Key: "external_id", Value: data.ExternalID}}

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "email", Value: data.Email},
			{Key: "name", Value: data.Name},
			{Key: "image_url", Value: data.ImageURL},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "external_id", Value: data.ExternalID},
			{Key: "addresses", Value: []domain.Address{}},
			{Key: "wishlist", Value: []primitive.ObjectID{}},
			{Key: "created_at", Value: now},
		}},
	}

	opts := options.Update().SetUpsert(true)

	_, err = r.db.Collection("users").UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertUser").Msg("")
		return
	}

	return nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByExternalID(ctx context.Context, externalID string) (user domain.User, err error) {
	filter := bson.D{{Key: "external_id", Value: externalID}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrUserNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByExternalID").Msg("")

		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) DeleteUserByExternalID(ctx context.Context, externalID string) (err error) {
	filter := bson.D{{Key: "external_id", Value: externalID}}

	_, err = r.db.Collection("users").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUserByExternalID").Msg("")
		return
	}

	return
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context, param pkgdto.Filter) (data []domain.User, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((param.Page - 1) * param.Limit).SetLimit(param.Limit)
	}

	cursor, err := r.db.Collection("users").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBUserRepositoryImpl) CountUsers(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("users").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountUsers").Msg("")
		return
	}

	return
}

func (r *MongoDBUserRepositoryImpl) SetUserAddresses(ctx context.Context, id primitive.ObjectID, addresses []domain.Address) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	if addresses == nil {
		addresses = []domain.Address{}
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "addresses", Value: addresses},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetUserAddresses").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) SetUserWishlist(ctx context.Context, id primitive.ObjectID, wishlist []primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	if wishlist == nil {
		wishlist = []primitive.ObjectID{}
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "wishlist", Value: wishlist},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetUserWishlist").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}
