package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/domain"
	cartsvc "bookstore/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type addCartRequest struct {
	BookID   int64 `json:"book_id" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

func listCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := callerIdentity(c)
		items, err := carts.List(c.Request.Context(), id.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if items == nil {
			items = []domain.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func addCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "book_id and a positive quantity required"})
			return
		}

		id := callerIdentity(c)
		err := carts.Add(c.Request.Context(), id.UserID, cartsvc.AddInput{
			BookID:   req.BookID,
			Quantity: req.Quantity,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Add to cart failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
	}
}

func updateCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}
		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a positive quantity required; use DELETE to remove an item"})
			return
		}

		id := callerIdentity(c)
		if err := carts.SetQuantity(c.Request.Context(), id.UserID, itemID, req.Quantity); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

func removeCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}

		id := callerIdentity(c)
		if err := carts.Remove(c.Request.Context(), id.UserID, itemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
