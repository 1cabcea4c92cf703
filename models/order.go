package models

import "time"

const (
	OrderTypeTable    = "table"
	OrderTypeDelivery = "delivery"
)

const OrderStatusPending = "pending"

// DeliveryTimes are the selectable ETA options, in minutes.
var DeliveryTimes = []int{30, 45, 60, 90, 120}

// Customization is the per-entry ingredient edit: removed must be a subset of
// the item's own ingredients, added comes from the extras list.
type Customization struct {
	Removed []string `json:"removed"`
	Added   []string `json:"added"`
}

// CartEntry is one confirmed item in the cart. The same menu item may appear
// multiple times as distinct entries.
type CartEntry struct {
	Item           MenuItem
	Customizations Customization
}

// OrderItem is the persisted snapshot of a cart entry inside the order's
// JSONB items blob.
type OrderItem struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Price          float64       `json:"price"`
	Customizations Customization `json:"customizations"`
}

type CreateOrderInput struct {
	OrderType       string
	TableNumber     *int
	DeliveryAddress *string
	DeliveryNumber  *string
	DeliveryPhone   *string
	DeliveryTime    *int
	Items           []OrderItem
	TotalPrice      float64
}

// Order is a row from the orders table.
type Order struct {
	ID              int64       `json:"id"`
	OrderType       string      `json:"orderType"`
	TableNumber     *int        `json:"tableNumber"`
	DeliveryAddress *string     `json:"deliveryAddress"`
	DeliveryNumber  *string     `json:"deliveryNumber"`
	DeliveryPhone   *string     `json:"deliveryPhone"`
	DeliveryTime    *int        `json:"deliveryTime"`
	Items           []OrderItem `json:"items"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}
