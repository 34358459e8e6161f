package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestAddCartHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, carts, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"book_id":9,"quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if carts.lastUser != 7 || carts.lastAdd.BookID != 9 || carts.lastAdd.Quantity != 3 {
		t.Fatalf("unexpected add call user=%d in=%+v", carts.lastUser, carts.lastAdd)
	}
}

func TestAddCartHandler_RejectsZeroQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"book_id":9,"quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartHandler_UnknownBook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, carts, _ := testDeps()
	carts.addErr = domain.ErrNotFound
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"book_id":999,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListCartHandler_EmptyIsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestListCartHandler_JoinedFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, carts, _ := testDeps()
	carts.items = []domain.CartItem{{
		ID:       1,
		UserID:   7,
		BookID:   9,
		Quantity: 2,
		Title:    "The Go Programming Language",
		Author:   "Alan A. A. Donovan",
		Price:    decimal.RequireFromString("39.99"),
	}}
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"title":"The Go Programming Language"`) {
		t.Fatalf("expected joined book fields, got %s", rec.Body.String())
	}
}

func TestUpdateCartHandler_RejectsZeroQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, carts, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/cart/5", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if carts.lastSetQty != 0 {
		t.Fatalf("expected no service call for zero quantity")
	}
}

func TestUpdateCartHandler_MissingLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, carts, _ := testDeps()
	carts.setErr = domain.ErrNotFound
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/cart/5", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRemoveCartHandler_AbsentLineIsSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/12345", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
