package cart

import (
	"context"
	"errors"

	"bookstore/internal/domain"
	cartrepo "bookstore/internal/repository/cart"
)

// Service enforces the cart ledger contract on top of the repository.
type Service struct {
	repo cartrepo.Repository
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// AddInput captures the add-to-cart payload.
type AddInput struct {
	BookID   int64 `json:"book_id"`
	Quantity int   `json:"quantity"`
}

// Add increments the line for (user, book) by the given quantity,
// creating it when absent. The repository upsert keeps concurrent adds
// from losing increments.
func (s *Service) Add(ctx context.Context, userID int64, in AddInput) error {
	if in.BookID <= 0 {
		return errors.New("book_id required")
	}
	if in.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	return s.repo.AddItem(ctx, userID, in.BookID, in.Quantity)
}

// List returns the user's cart lines with live catalog fields joined in.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetQuantity overwrites a line's quantity. Zero or negative is
// rejected: dropping a line is Remove's job, not an update side effect.
func (s *Service) SetQuantity(ctx context.Context, userID, itemID int64, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	return s.repo.SetQuantity(ctx, userID, itemID, quantity)
}

// Remove deletes a line. Removing an absent line is not an error.
func (s *Service) Remove(ctx context.Context, userID, itemID int64) error {
	return s.repo.RemoveItem(ctx, userID, itemID)
}

// Clear empties the user's cart.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
