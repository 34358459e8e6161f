package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Order is a placed order. Orders are immutable once created.
type Order struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Shipping      ShippingAddress `json:"shipping_address"`
	OrderDate     time.Time       `json:"order_date"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem is one line of an order. Price is the catalog price at the
// moment the order was placed; later catalog changes do not affect it.
type OrderItem struct {
	ID       int64           `json:"-"`
	OrderID  int64           `json:"-"`
	BookID   int64           `json:"book_id"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
