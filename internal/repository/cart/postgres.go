package cart

import (
	"context"
	"errors"

	"bookstore/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) AddItem(ctx context.Context, userID, bookID int64, quantity int) error {
	const q = `
INSERT INTO cart_items (user_id, book_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT ON CONSTRAINT cart_items_user_book_key
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, userID, bookID, quantity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// unknown book or user
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	const q = `
SELECT c.id, c.user_id, c.book_id, c.quantity, b.title, b.author, b.price::text, b.image_url
FROM cart_items c
JOIN books b ON c.book_id = b.id
WHERE c.user_id = $1
ORDER BY c.id ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		var price string
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.BookID,
			&item.Quantity,
			&item.Title,
			&item.Author,
			&price,
			&item.ImageURL,
		); err != nil {
			return nil, err
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) SetQuantity(ctx context.Context, userID, itemID int64, quantity int) error {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE id = $2 AND user_id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, itemID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, itemID int64) error {
	// Deleting an absent line is not an error.
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	return err
}

func (r *postgresRepo) Clear(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
