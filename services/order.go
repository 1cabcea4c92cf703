package services

import (
	"context"
	"encoding/json"
	"fmt"

	"legrazie-orders/db"
	"legrazie-orders/models"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateOrder applies the required-field rules shared by the submitter
// and the store: an unset type, a table order without a table number, or a
// delivery order missing address, street number or phone are all rejected.
func ValidateCreateOrder(in *models.CreateOrderInput) error {
	switch in.OrderType {
	case "":
		return ValidationError{Field: "order_type", Message: "order type is required"}
	case models.OrderTypeTable, models.OrderTypeDelivery:
	default:
		return ValidationError{Field: "order_type", Message: "invalid order type"}
	}

	if len(in.Items) == 0 {
		return ValidationError{Field: "items", Message: "items cannot be empty"}
	}
	if in.TotalPrice <= 0 {
		return ValidationError{Field: "total_price", Message: "total price is required"}
	}

	if in.OrderType == models.OrderTypeTable {
		if in.TableNumber == nil || *in.TableNumber <= 0 {
			return ValidationError{Field: "table_number", Message: "table number is required for table orders"}
		}
	}

	if in.OrderType == models.OrderTypeDelivery {
		if strEmpty(in.DeliveryAddress) || strEmpty(in.DeliveryNumber) || strEmpty(in.DeliveryPhone) {
			return ValidationError{Field: "delivery", Message: "delivery information is required for delivery orders"}
		}
		if in.DeliveryTime != nil && !validDeliveryTime(*in.DeliveryTime) {
			return ValidationError{Field: "delivery_time", Message: "delivery time must be one of 30, 45, 60, 90, 120 minutes"}
		}
	}

	return nil
}

func strEmpty(s *string) bool {
	return s == nil || *s == ""
}

func validDeliveryTime(minutes int) bool {
	for _, t := range models.DeliveryTimes {
		if t == minutes {
			return true
		}
	}
	return false
}

// normalizeOrderInput nulls out the fields that do not belong to the order
// type, so a table order never carries delivery data and vice versa.
func normalizeOrderInput(in *models.CreateOrderInput) {
	switch in.OrderType {
	case models.OrderTypeTable:
		in.DeliveryAddress = nil
		in.DeliveryNumber = nil
		in.DeliveryPhone = nil
		in.DeliveryTime = nil
	case models.OrderTypeDelivery:
		in.TableNumber = nil
	}
}

// CreateOrder validates and persists one order with status pending, returning
// the generated id.
func CreateOrder(ctx context.Context, in models.CreateOrderInput) (int64, error) {
	if err := ValidateCreateOrder(&in); err != nil {
		return 0, err
	}
	normalizeOrderInput(&in)

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return 0, fmt.Errorf("marshal order items: %w", err)
	}

	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO orders (
			order_type, table_number, delivery_address, delivery_number,
			delivery_phone, delivery_time, items, total_price, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		in.OrderType, in.TableNumber, in.DeliveryAddress, in.DeliveryNumber,
		in.DeliveryPhone, in.DeliveryTime, itemsJSON, in.TotalPrice, models.OrderStatusPending,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// ListRecentOrders returns the 50 most recent orders, newest first.
func ListRecentOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, order_type, table_number, delivery_address, delivery_number,
			delivery_phone, delivery_time, items, total_price, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT 50`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemsJSON []byte
		if err := rows.Scan(&o.ID, &o.OrderType, &o.TableNumber, &o.DeliveryAddress,
			&o.DeliveryNumber, &o.DeliveryPhone, &o.DeliveryTime, &itemsJSON,
			&o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if len(itemsJSON) > 0 {
			if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
				return nil, fmt.Errorf("unmarshal order %d items: %w", o.ID, err)
			}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
