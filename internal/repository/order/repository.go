package order

import (
	"context"

	"bookstore/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderItem is one line to be written with the order. Price is
// the snapshot value recorded on the order, independent of the live
// catalog from this point on.
type CreateOrderItem struct {
	BookID   int64
	Quantity int
	Price    decimal.Decimal
}

// CreateOrderInput is everything the placement transaction writes.
type CreateOrderInput struct {
	UserID      int64
	TotalAmount decimal.Decimal
	Shipping    domain.ShippingAddress
	Items       []CreateOrderItem
}

// Repository persists orders.
//
// Create must be atomic: the order row, its items, and the cart clear
// either all become visible or none do.
type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}
