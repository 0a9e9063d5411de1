package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/L-RexTech/HROne-ecommerce-backend/internal/models"
)

// fakeStore is an in-memory stand-in for the Mongo repo. It mirrors the
// store's observable behavior: missing documents surface as
// mongo.ErrNoDocuments, listing follows insertion order, and inventory
// decrements are unconditional.
type fakeStore struct {
	products     map[primitive.ObjectID]*models.Product
	productOrder []primitive.ObjectID

	orders     map[primitive.ObjectID]*models.Order
	orderOrder []primitive.ObjectID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[primitive.ObjectID]*models.Product),
		orders:   make(map[primitive.ObjectID]*models.Order),
	}
}

func (f *fakeStore) CreateProduct(_ context.Context, prod *models.Product) (*models.Product, error) {
	p := *prod
	p.ID = primitive.NewObjectID()
	f.products[p.ID] = &p
	f.productOrder = append(f.productOrder, p.ID)
	cp := p
	return &cp, nil
}

func (f *fakeStore) GetProduct(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) ListProducts(_ context.Context, name, size string, limit, offset int) (int64, []models.Product, error) {
	matched := make([]models.Product, 0)
	for _, id := range f.productOrder {
		p := f.products[id]
		if name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			continue
		}
		if size != "" && p.Size != size {
			continue
		}
		matched = append(matched, *p)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return total, []models.Product{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return total, matched[offset:end], nil
}

func (f *fakeStore) DecrementInventory(_ context.Context, id primitive.ObjectID, qty int64) error {
	if p, ok := f.products[id]; ok {
		p.InventoryCount -= qty
	}
	return nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order *models.Order) (primitive.ObjectID, error) {
	o := *order
	o.ID = primitive.NewObjectID()
	f.orders[o.ID] = &o
	f.orderOrder = append(f.orderOrder, o.ID)
	return o.ID, nil
}

func (f *fakeStore) GetOrder(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *o
	return &cp, nil
}

func (f *fakeStore) ListUserOrders(_ context.Context, userID string, limit, offset int) (int64, []models.Order, error) {
	matched := make([]models.Order, 0)
	for _, id := range f.orderOrder {
		o := f.orders[id]
		if v, ok := o.UserAddress["user_id"].(string); !ok || v != userID {
			continue
		}
		matched = append(matched, *o)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return total, []models.Order{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return total, matched[offset:end], nil
}
