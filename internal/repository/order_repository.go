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

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id primitive.ObjectID) (order domain.Order, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrOrderNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")

		return order, err
	}

	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByExternalID(ctx context.Context, externalID string) (data []domain.Order, err error) {
	filter := bson.D{{Key: "external_id", Value: externalID}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByExternalID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByExternalID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	if param.Limit != 0 && param.Page != 0 {
		opts = opts.SetSkip((param.Page - 1) * param.Limit).SetLimit(param.Limit)
	}

	cursor, err := r.db.Collection("orders").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, data domain.Order) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	set := bson.D{
		{Key: "status", Value: data.Status},
		{Key: "updated_at", Value: time.Now()},
	}
	if data.ShippedAt != nil {
		set = append(set, bson.E{Key: "shipped_at", Value: data.ShippedAt})
	}
	if data.DeliveredAt != nil {
		set = append(set, bson.E{Key: "delivered_at", Value: data.DeliveredAt})
	}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("Failed to update order status")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) CountOrders(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("orders").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrders").Msg("")
		return
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) SumOrderRevenue(ctx context.Context) (total float64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
	}

	cursor, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SumOrderRevenue").Msg("")
		return
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SumOrderRevenue").Msg("")
		return
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
