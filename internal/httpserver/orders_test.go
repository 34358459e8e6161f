package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookstore/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestPlaceOrderHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, orders := testDeps()
	orders.orderID = 11
	orders.total = decimal.RequireFromString("27.50")
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{
		"items":[{"book_id":1,"quantity":2,"price":"0.01"},{"book_id":2,"quantity":1}],
		"total_amount":"0.01",
		"shipping_address":{"name":"Ada","address":"1 Main St","city":"Springfield","zip":"12345"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"orderId":11`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if orders.lastUser != 7 {
		t.Fatalf("expected caller user 7, got %d", orders.lastUser)
	}
	// the claimed price/total never reach the service
	if len(orders.lastPlace.Items) != 2 || orders.lastPlace.Items[0].BookID != 1 || orders.lastPlace.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", orders.lastPlace.Items)
	}
	if orders.lastPlace.Shipping.City != "Springfield" {
		t.Fatalf("unexpected shipping %+v", orders.lastPlace.Shipping)
	}
}

func TestPlaceOrderHandler_RequiresItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"items":[],"shipping_address":{"name":"Ada","address":"1 Main St","city":"Springfield","zip":"12345"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestPlaceOrderHandler_RequiresShipping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, _ := testDeps()
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"items":[{"book_id":1,"quantity":1}],"shipping_address":{"name":"Ada"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestPlaceOrderHandler_UnknownBook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, orders := testDeps()
	orders.placeErr = domain.ErrNotFound
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"items":[{"book_id":999,"quantity":1}],"shipping_address":{"name":"Ada","address":"1 Main St","city":"Springfield","zip":"12345"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListOrdersHandler_IncludesZeroItemOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps, _, _, orders := testDeps()
	orders.orders = []domain.Order{
		{
			ID:          2,
			UserID:      7,
			TotalAmount: decimal.RequireFromString("27.50"),
			OrderDate:   time.Now(),
			Items: []domain.OrderItem{
				{BookID: 1, Title: "A", Quantity: 2, Price: decimal.RequireFromString("10.00")},
			},
		},
		{
			ID:          1,
			UserID:      7,
			TotalAmount: decimal.RequireFromString("5.00"),
			OrderDate:   time.Now().Add(-time.Hour),
			Items:       []domain.OrderItem{},
		},
	}
	router, err := buildRouter(logDiscard(), nil, deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := rec.Body.String()
	if !strings.Contains(got, `"items":[]`) {
		t.Fatalf("expected zero-item order with empty items list, got %s", got)
	}
	if !strings.Contains(got, `"title":"A"`) {
		t.Fatalf("expected item titles, got %s", got)
	}
}
