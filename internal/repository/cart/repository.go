package cart

import (
	"context"

	"bookstore/internal/domain"
)

// Repository persists per-user cart lines.
//
// AddItem must be atomic: concurrent adds for the same (user, book)
// must not lose increments, so the implementation uses a row-level
// upsert rather than read-modify-write.
type Repository interface {
	AddItem(ctx context.Context, userID, bookID int64, quantity int) error
	ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error)
	SetQuantity(ctx context.Context, userID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}
