package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"   json:"id"`
	Name           string             `bson:"name"            json:"name"`
	Price          float64            `bson:"price"           json:"price"`
	Description    string             `bson:"description"     json:"description"`
	Category       string             `bson:"category"        json:"category"`
	InventoryCount int64              `bson:"inventory_count" json:"inventory_count"`
	Size           string             `bson:"size"            json:"size"`
	CreatedAt      time.Time          `bson:"created_at"      json:"created_at"`
}

type OrderItem struct {
	ProductID      string  `bson:"product_id"      json:"product_id"`
	BoughtQuantity int64   `bson:"bought_quantity" json:"bought_quantity"`
	TotalAmount    float64 `bson:"total_amount"    json:"total_amount"`
}

// UserAddress is schema-less on purpose; by convention the "user_id" key
// identifies the ordering user and is what order queries filter on.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items       []OrderItem        `bson:"items"         json:"items"`
	TotalAmount float64            `bson:"total_amount"  json:"total_amount"`
	UserAddress map[string]any     `bson:"user_address"  json:"user_address"`
	CreatedAt   time.Time          `bson:"created_at"    json:"created_at"`
}
