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

// OrderStore is what the order service needs from the orders collection.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListUserOrders(ctx context.Context, userID string, limit, offset int) (int64, []models.Order, error)
}

type OrderService struct {
	Products ProductStore
	Orders   OrderStore
}

// CreateOrder validates every line item against current stock, persists
// the order, then decrements inventory per item. The validation and
// decrement passes are not wrapped in a transaction: two concurrent
// orders can both pass validation against the same stock level and both
// decrement, driving inventory negative. Known gap, kept as-is.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	ids := make([]primitive.ObjectID, len(req.Items))
	for i, item := range req.Items {
		id, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: product_id %q is not a valid id", ErrValidation, item.ProductID)
		}
		if item.BoughtQuantity <= 0 {
			return nil, fmt.Errorf("%w: bought_quantity must be > 0", ErrValidation)
		}
		ids[i] = id
	}

	for i, item := range req.Items {
		prod, err := s.Products.GetProduct(ctx, ids[i])
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		if prod.InventoryCount < item.BoughtQuantity {
			return nil, fmt.Errorf("%w for product %s", ErrInsufficientInventory, item.ProductID)
		}
	}

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			ProductID:      item.ProductID,
			BoughtQuantity: item.BoughtQuantity,
			TotalAmount:    item.TotalAmount,
		}
	}

	order := &models.Order{
		Items:       items,
		TotalAmount: req.TotalAmount,
		UserAddress: req.UserAddress,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.Orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	for i, item := range req.Items {
		if err := s.Products.DecrementInventory(ctx, ids[i], item.BoughtQuantity); err != nil {
			return nil, err
		}
	}

	return s.Orders.GetOrder(ctx, id)
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string, limit, offset int) (*transport.OrderPage, error) {
	total, orders, err := s.Orders.ListUserOrders(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &transport.OrderPage{
		Orders:  orders,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}, nil
}
