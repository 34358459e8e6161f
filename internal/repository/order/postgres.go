package order

import (
	"context"
	"io"
	"log"

	"bookstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create inserts the order row and its items and clears the user's
// cart, all in one transaction. Any failure rolls back every write in
// the attempt; no partial order is ever visible to readers.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (user_id, total_amount, ship_name, ship_address, ship_city, ship_zip, ship_phone, ship_email)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`
	var orderID int64
	if err := tx.QueryRow(ctx, insertOrder,
		in.UserID,
		in.TotalAmount.String(),
		in.Shipping.Name,
		in.Shipping.Address,
		in.Shipping.City,
		in.Shipping.Zip,
		in.Shipping.Phone,
		in.Shipping.Email,
	).Scan(&orderID); err != nil {
		r.logger.Printf("order repo: insert order user_id=%d error=%v", in.UserID, err)
		return 0, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, book_id, quantity, price)
VALUES ($1, $2, $3, $4)
`
	for _, item := range in.Items {
		if _, err := tx.Exec(ctx, insertItem, orderID, item.BookID, item.Quantity, item.Price.String()); err != nil {
			r.logger.Printf("order repo: insert item order_id=%d book_id=%d error=%v", orderID, item.BookID, err)
			return 0, err
		}
	}

	// Full-cart clear, even when the order covered only a subset
	// (direct "buy now" purchases bypass the cart).
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, in.UserID); err != nil {
		r.logger.Printf("order repo: clear cart user_id=%d error=%v", in.UserID, err)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListByUser returns the user's orders newest first, each with its
// items. The items join is a LEFT JOIN so an order with zero items
// still appears, with an empty list.
func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const q = `
SELECT o.id, o.user_id, o.total_amount::text,
       o.ship_name, o.ship_address, o.ship_city, o.ship_zip, o.ship_phone, o.ship_email,
       o.order_date, o.order_status, o.payment_status,
       oi.id, oi.book_id, COALESCE(b.title, ''), oi.quantity, oi.price::text
FROM orders o
LEFT JOIN order_items oi ON oi.order_id = o.id
LEFT JOIN books b ON b.id = oi.book_id
WHERE o.user_id = $1
ORDER BY o.order_date DESC, o.id DESC, oi.id ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%d error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var (
		result []domain.Order
		byID   = map[int64]int{}
	)
	for rows.Next() {
		var (
			o         domain.Order
			total     string
			itemID    *int64
			bookID    *int64
			title     *string
			quantity  *int
			itemPrice *string
		)
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&total,
			&o.Shipping.Name,
			&o.Shipping.Address,
			&o.Shipping.City,
			&o.Shipping.Zip,
			&o.Shipping.Phone,
			&o.Shipping.Email,
			&o.OrderDate,
			&o.OrderStatus,
			&o.PaymentStatus,
			&itemID,
			&bookID,
			&title,
			&quantity,
			&itemPrice,
		); err != nil {
			return nil, err
		}

		idx, seen := byID[o.ID]
		if !seen {
			if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
				return nil, err
			}
			o.Items = []domain.OrderItem{}
			result = append(result, o)
			idx = len(result) - 1
			byID[o.ID] = idx
		}

		if itemID == nil {
			continue
		}
		price, err := decimal.NewFromString(*itemPrice)
		if err != nil {
			return nil, err
		}
		result[idx].Items = append(result[idx].Items, domain.OrderItem{
			ID:       *itemID,
			OrderID:  o.ID,
			BookID:   *bookID,
			Title:    *title,
			Quantity: *quantity,
			Price:    price,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
