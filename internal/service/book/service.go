package book

import (
	"context"

	"bookstore/internal/domain"
	bookrepo "bookstore/internal/repository/book"
)

type Service struct {
	repo bookrepo.Repository
}

func New(repo bookrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Book, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Book, error) {
	return s.repo.GetByID(ctx, id)
}
