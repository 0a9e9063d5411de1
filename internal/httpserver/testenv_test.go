package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/L-RexTech/HROne-ecommerce-backend/internal/models"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/service"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Store   *fakeStore
	Catalog *CatalogHTTP
	Order   *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	store := newFakeStore()
	return &testEnv{
		T:       t,
		E:       echo.New(),
		Store:   store,
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Products: store}},
		Order:   &OrderHTTP{Svc: &service.OrderService{Products: store, Orders: store}},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			env.T.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// fakeStore mirrors the Mongo repo in memory: missing documents surface
// as mongo.ErrNoDocuments, listing follows insertion order.
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
	return paginate(matched, limit, offset)
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
	return paginate(matched, limit, offset)
}

func paginate[T any](matched []T, limit, offset int) (int64, []T, error) {
	total := int64(len(matched))
	if offset >= len(matched) {
		return total, []T{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return total, matched[offset:end], nil
}
