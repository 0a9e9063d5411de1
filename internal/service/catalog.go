package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/L-RexTech/HROne-ecommerce-backend/internal/models"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/transport"
)

var (
	ErrValidation            = errors.New("validation")             // 400
	ErrNotFound              = errors.New("not found")              // 404
	ErrInsufficientInventory = errors.New("insufficient inventory") // 400
)

// ProductStore is what the catalog and order services need from the
// products collection. Missing documents surface as mongo.ErrNoDocuments.
type ProductStore interface {
	CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListProducts(ctx context.Context, name, size string, limit, offset int) (int64, []models.Product, error)
	DecrementInventory(ctx context.Context, id primitive.ObjectID, qty int64) error
}

type CatalogService struct {
	Products ProductStore
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == nil || req.Price == nil || req.Description == nil ||
		req.Category == nil || req.InventoryCount == nil || req.Size == nil {
		return nil, fmt.Errorf("%w: all product fields are required", ErrValidation)
	}

	prod := &models.Product{
		Name:           *req.Name,
		Price:          *req.Price,
		Description:    *req.Description,
		Category:       *req.Category,
		InventoryCount: *req.InventoryCount,
		Size:           *req.Size,
		CreatedAt:      time.Now().UTC(),
	}

	return s.Products.CreateProduct(ctx, prod)
}

func (s *CatalogService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	prod, err := s.Products.GetProduct(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, name, size string, limit, offset int) (*transport.ProductPage, error) {
	total, items, err := s.Products.ListProducts(ctx, name, size, limit, offset)
	if err != nil {
		return nil, err
	}

	return &transport.ProductPage{
		Products: items,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
		HasMore:  int64(offset+limit) < total,
	}, nil
}
