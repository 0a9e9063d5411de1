package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/L-RexTech/HROne-ecommerce-backend/internal/models"
)

type Mongo struct {
	Products *mongo.Collection
	Orders   *mongo.Collection
}

func (r *Mongo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	res, err := r.Products.InsertOne(ctx, prod)
	if err != nil {
		return nil, err
	}

	var created models.Product
	if err := r.Products.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Mongo) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var prod models.Product
	if err := r.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *Mongo) ListProducts(ctx context.Context, name, size string, limit, offset int) (int64, []models.Product, error) {
	filter := bson.M{}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if size != "" {
		filter["size"] = size
	}

	total, err := r.Products.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.Products.Find(ctx, filter, opts)
	if err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := cur.All(ctx, &items); err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// DecrementInventory applies an unconditional $inc; callers are expected
// to have checked stock beforehand.
func (r *Mongo) DecrementInventory(ctx context.Context, id primitive.ObjectID, qty int64) error {
	_, err := r.Products.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"inventory_count": -qty}},
	)
	return err
}
