package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/domain"
	orderrepo "bookstore/internal/repository/order"
	"github.com/shopspring/decimal"
)

// taxRate is applied to the subtotal at checkout.
var taxRate = decimal.NewFromFloat(0.10)

// Service owns order placement and history.
type Service struct {
	repo  orderRepo
	books bookRepo
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
}

func New(repo orderrepo.Repository, books bookRepo) *Service {
	return &Service{repo: repo, books: books}
}

// LineInput is one requested order line. Any client-supplied price is
// ignored; the catalog price at placement time is what gets recorded.
type LineInput struct {
	BookID   int64 `json:"book_id"`
	Quantity int   `json:"quantity"`
}

// PlaceInput captures the checkout payload.
type PlaceInput struct {
	Items    []LineInput            `json:"items"`
	Shipping domain.ShippingAddress `json:"shipping_address"`
}

// Place prices the requested lines from the catalog, computes
// total = subtotal + 10% tax, and hands everything to the repository's
// single transaction. Either the order, its items, and the cart clear
// all commit, or none do.
func (s *Service) Place(ctx context.Context, userID int64, in PlaceInput) (int64, decimal.Decimal, error) {
	if len(in.Items) == 0 {
		return 0, decimal.Zero, errors.New("items required")
	}
	if err := validateShipping(in.Shipping); err != nil {
		return 0, decimal.Zero, err
	}

	subtotal := decimal.Zero
	items := make([]orderrepo.CreateOrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.BookID <= 0 {
			return 0, decimal.Zero, errors.New("book_id required")
		}
		if line.Quantity <= 0 {
			return 0, decimal.Zero, errors.New("quantity must be positive")
		}
		b, err := s.books.GetByID(ctx, line.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return 0, decimal.Zero, fmt.Errorf("book %d: %w", line.BookID, domain.ErrNotFound)
			}
			return 0, decimal.Zero, err
		}
		items = append(items, orderrepo.CreateOrderItem{
			BookID:   b.ID,
			Quantity: line.Quantity,
			Price:    b.Price,
		})
		subtotal = subtotal.Add(b.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	total := subtotal.Add(subtotal.Mul(taxRate)).Round(2)

	orderID, err := s.repo.Create(ctx, orderrepo.CreateOrderInput{
		UserID:      userID,
		TotalAmount: total,
		Shipping:    in.Shipping,
		Items:       items,
	})
	if err != nil {
		return 0, decimal.Zero, err
	}
	return orderID, total, nil
}

// List returns the user's orders, newest first, items included.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func validateShipping(a domain.ShippingAddress) error {
	if strings.TrimSpace(a.Name) == "" ||
		strings.TrimSpace(a.Address) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.Zip) == "" {
		return errors.New("shipping name, address, city and zip required")
	}
	return nil
}
