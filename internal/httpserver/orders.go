package httpserver

import (
	"errors"
	"net/http"

	"bookstore/internal/domain"
	ordersvc "bookstore/internal/service/order"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type orderItemRequest struct {
	BookID   int64 `json:"book_id" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
	// price is accepted for wire compatibility but never trusted;
	// the catalog price at placement time is what gets recorded.
	Price decimal.Decimal `json:"price"`
}

type shippingAddressRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type placeOrderRequest struct {
	Items           []orderItemRequest     `json:"items" binding:"required,min=1,dive"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	ShippingAddress shippingAddressRequest `json:"shipping_address" binding:"required"`
}

func placeOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items and shipping_address required"})
			return
		}

		items := make([]ordersvc.LineInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, ordersvc.LineInput{BookID: item.BookID, Quantity: item.Quantity})
		}

		id := callerIdentity(c)
		orderID, total, err := orders.Place(c.Request.Context(), id.UserID, ordersvc.PlaceInput{
			Items: items,
			Shipping: domain.ShippingAddress{
				Name:    req.ShippingAddress.Name,
				Address: req.ShippingAddress.Address,
				City:    req.ShippingAddress.City,
				Zip:     req.ShippingAddress.Zip,
				Phone:   req.ShippingAddress.Phone,
				Email:   req.ShippingAddress.Email,
			},
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order creation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Order placed successfully",
			"orderId":      orderID,
			"total_amount": total,
		})
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := callerIdentity(c)
		result, err := orders.List(c.Request.Context(), id.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if result == nil {
			result = []domain.Order{}
		}
		c.JSON(http.StatusOK, result)
	}
}
