// Package store is the demo domain shipped with the module: a small set of
// commerce types exercised by member-extraction tests and by the CLI's
// dump command. Prices are integer cents to stay exact.
package store

import (
	"time"
)

// Product is an item available for sale.
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku" meta:"unique"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents" typegraph:"price_cents,readonly"`
	Inventory   int       `json:"inventory_count"`
	CreatedAt   time.Time `json:"created_at" typegraph:"created_at,readonly"`
}

// InStock reports whether any inventory remains.
func (p Product) InStock() bool { return p.Inventory > 0 }

// Customer is the account placing orders. A nil Address means none was
// provided.
type Customer struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email" meta:"pii"`
	FullName string  `json:"full_name" meta:"pii"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
}

// Order is one transaction by a customer.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// Subtotal sums the line items.
func (o *Order) Subtotal() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}

// OrderItem is a product line within an order, snapshotting the price at
// purchase time.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Statuses lists every order status, used as enum fixture data.
func Statuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}
}

// Repository is the storage surface for the demo domain.
type Repository interface {
	Product(id int64) (*Product, error)
	SaveOrder(o *Order) error
	CustomersByStatus(status OrderStatus) ([]Customer, error)
}
