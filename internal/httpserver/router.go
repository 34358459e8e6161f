package httpserver

import (
	"context"
	"errors"
	"log"

	"bookstore/internal/domain"
	authsvc "bookstore/internal/service/auth"
	cartsvc "bookstore/internal/service/cart"
	ordersvc "bookstore/internal/service/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	VerifyToken(token string) (authsvc.Identity, error)
}

// BookService serves the read-only catalog.
type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int64) (*domain.Book, error)
}

// CartService mutates and reads the caller's cart.
type CartService interface {
	Add(ctx context.Context, userID int64, in cartsvc.AddInput) error
	List(ctx context.Context, userID int64) ([]domain.CartItem, error)
	SetQuantity(ctx context.Context, userID, itemID int64, quantity int) error
	Remove(ctx context.Context, userID, itemID int64) error
}

// OrderService places orders and serves order history.
type OrderService interface {
	Place(ctx context.Context, userID int64, in ordersvc.PlaceInput) (int64, decimal.Decimal, error)
	List(ctx context.Context, userID int64) ([]domain.Order, error)
}

// Deps aggregates the services the router needs.
type Deps struct {
	AuthSvc  AuthService
	BookSvc  BookService
	CartSvc  CartService
	OrderSvc OrderService
}

func (d Deps) validate() error {
	if d.AuthSvc == nil || d.BookSvc == nil || d.CartSvc == nil || d.OrderSvc == nil {
		return errors.New("httpserver: all services must be set")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.POST("/register", registerHandler(deps.AuthSvc))
	api.POST("/login", loginHandler(deps.AuthSvc))
	api.GET("/books", listBooksHandler(deps.BookSvc))
	api.GET("/books/:id", getBookHandler(deps.BookSvc))

	protected := api.Group("", authMiddleware(deps.AuthSvc))
	protected.GET("/cart", listCartHandler(deps.CartSvc))
	protected.POST("/cart", addCartHandler(deps.CartSvc))
	protected.PUT("/cart/:id", updateCartHandler(deps.CartSvc))
	protected.DELETE("/cart/:id", removeCartHandler(deps.CartSvc))
	protected.POST("/orders", placeOrderHandler(deps.OrderSvc))
	protected.GET("/orders", listOrdersHandler(deps.OrderSvc))
	protected.GET("/users/profile", profileHandler(deps.AuthSvc))
	protected.PUT("/users/password", changePasswordHandler(deps.AuthSvc))

	return router, nil
}
