package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/L-RexTech/HROne-ecommerce-backend/internal/models"
)

func (r *Mongo) CreateOrder(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	res, err := r.Orders.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *Mongo) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Mongo) ListUserOrders(ctx context.Context, userID string, limit, offset int) (int64, []models.Order, error) {
	filter := bson.M{"user_address.user_id": userID}

	total, err := r.Orders.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.Orders.Find(ctx, filter, opts)
	if err != nil {
		return 0, nil, err
	}

	orders := make([]models.Order, 0, limit)
	if err := cur.All(ctx, &orders); err != nil {
		return 0, nil, err
	}

	return total, orders, nil
}
