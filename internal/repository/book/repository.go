package book

import (
	"context"

	"bookstore/internal/domain"
)

// Repository reads the catalog. Upsert exists for the seed and importer
// commands; the HTTP API has no write path for books.
type Repository interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Upsert(ctx context.Context, b domain.Book) (*domain.Book, error)
}
