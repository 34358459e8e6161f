package domain

import "github.com/shopspring/decimal"

// CartItem is one line of a user's cart. At most one line exists per
// (user, book); adding the same book again increments the quantity.
// The book fields are joined in from the catalog at read time, so the
// price shown is the live catalog price, not a snapshot.
type CartItem struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id"`
	BookID   int64           `json:"book_id"`
	Quantity int             `json:"quantity"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}
