package book

import (
	"context"
	"errors"
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

const bookColumns = `id, title, author, category, price::text, stock, rating::text, reviews, image_url, description`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id ASC`)
	if err != nil {
		r.logger.Printf("book repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("book repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, b domain.Book) (*domain.Book, error) {
	const q = `
INSERT INTO books (title, author, category, price, stock, rating, reviews, image_url, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (title, author) DO UPDATE
SET category = EXCLUDED.category,
    price = EXCLUDED.price,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    image_url = EXCLUDED.image_url,
    description = EXCLUDED.description
RETURNING ` + bookColumns
	row := r.pool.QueryRow(ctx, q,
		b.Title,
		b.Author,
		b.Category,
		b.Price.String(),
		b.Stock,
		b.Rating.String(),
		b.Reviews,
		b.ImageURL,
		b.Description,
	)
	out, err := scanBook(row)
	if err != nil {
		r.logger.Printf("book repo: upsert title=%q error=%v", b.Title, err)
		return nil, err
	}
	return out, nil
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	var price, rating string
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Category,
		&price,
		&b.Stock,
		&rating,
		&b.Reviews,
		&b.ImageURL,
		&b.Description,
	); err != nil {
		return nil, err
	}
	var err error
	if b.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if b.Rating, err = decimal.NewFromString(rating); err != nil {
		return nil, err
	}
	return &b, nil
}
