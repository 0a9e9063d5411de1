package transport

import "github.com/L-RexTech/HROne-ecommerce-backend/internal/models"

// Fields are pointers so a missing field can be told apart from a zero
// value; all of them are required.
type CreateProductRequest struct {
	Name           *string  `json:"name"`
	Price          *float64 `json:"price"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	InventoryCount *int64   `json:"inventory_count"`
	Size           *string  `json:"size"`
}

type CreateOrderItem struct {
	ProductID      string  `json:"product_id"`
	BoughtQuantity int64   `json:"bought_quantity"`
	TotalAmount    float64 `json:"total_amount"`
}

type CreateOrderRequest struct {
	Items       []CreateOrderItem `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	UserAddress map[string]any    `json:"user_address"`
}

type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
	HasMore  bool             `json:"has_more"`
}

type OrderPage struct {
	Orders  []models.Order `json:"orders"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
	HasMore bool           `json:"has_more"`
}
