package cart

import (
	"context"
	"errors"
	"testing"

	"bookstore/internal/domain"
)

type stubRepo struct {
	addErr        error
	lastAddUser   int64
	lastAddBook   int64
	lastAddQty    int
	addCalled     bool
	listItems     []domain.CartItem
	listErr       error
	setErr        error
	lastSetItem   int64
	lastSetQty    int
	setCalled     bool
	removeErr     error
	lastRemoved   int64
	clearErr      error
	lastCleared   int64
}

func (s *stubRepo) AddItem(_ context.Context, userID, bookID int64, quantity int) error {
	s.addCalled = true
	s.lastAddUser = userID
	s.lastAddBook = bookID
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubRepo) ListByUser(_ context.Context, _ int64) ([]domain.CartItem, error) {
	return s.listItems, s.listErr
}

func (s *stubRepo) SetQuantity(_ context.Context, _, itemID int64, quantity int) error {
	s.setCalled = true
	s.lastSetItem = itemID
	s.lastSetQty = quantity
	return s.setErr
}

func (s *stubRepo) RemoveItem(_ context.Context, _, itemID int64) error {
	s.lastRemoved = itemID
	return s.removeErr
}

func (s *stubRepo) Clear(_ context.Context, userID int64) error {
	s.lastCleared = userID
	return s.clearErr
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	for _, qty := range []int{0, -3} {
		if err := svc.Add(context.Background(), 1, AddInput{BookID: 2, Quantity: qty}); err == nil {
			t.Fatalf("expected error for quantity %d", qty)
		}
	}
	if repo.addCalled {
		t.Fatalf("expected repo untouched on validation failure")
	}
}

func TestAddRejectsMissingBook(t *testing.T) {
	svc := New(&stubRepo{})
	if err := svc.Add(context.Background(), 1, AddInput{Quantity: 1}); err == nil {
		t.Fatalf("expected error for missing book_id")
	}
}

func TestAddDelegatesToRepo(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if err := svc.Add(context.Background(), 5, AddInput{BookID: 9, Quantity: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastAddUser != 5 || repo.lastAddBook != 9 || repo.lastAddQty != 3 {
		t.Fatalf("unexpected repo call user=%d book=%d qty=%d", repo.lastAddUser, repo.lastAddBook, repo.lastAddQty)
	}
}

func TestAddUnknownBook(t *testing.T) {
	repo := &stubRepo{addErr: domain.ErrNotFound}
	svc := New(repo)
	if err := svc.Add(context.Background(), 1, AddInput{BookID: 999, Quantity: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetQuantityRejectsNonPositive(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	// Decrease-to-zero is not a deletion path; callers must Remove.
	if err := svc.SetQuantity(context.Background(), 1, 2, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if repo.setCalled {
		t.Fatalf("expected repo untouched on validation failure")
	}
}

func TestSetQuantityDelegates(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if err := svc.SetQuantity(context.Background(), 1, 2, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSetItem != 2 || repo.lastSetQty != 4 {
		t.Fatalf("unexpected repo call item=%d qty=%d", repo.lastSetItem, repo.lastSetQty)
	}
}

func TestSetQuantityMissingLine(t *testing.T) {
	repo := &stubRepo{setErr: domain.ErrNotFound}
	svc := New(repo)
	if err := svc.SetQuantity(context.Background(), 1, 42, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveIsPassthrough(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	if err := svc.Remove(context.Background(), 1, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastRemoved != 42 {
		t.Fatalf("expected remove for item 42, got %d", repo.lastRemoved)
	}
}
