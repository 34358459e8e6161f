package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/domain"
	"github.com/gin-gonic/gin"
)

func listBooksHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := books.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if result == nil {
			result = []domain.Book{}
		}
		c.JSON(http.StatusOK, result)
	}
}

func getBookHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
			return
		}

		b, err := books.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
