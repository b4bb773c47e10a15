// Package mockapi is an in-memory double of the StreetBazaar backend REST
// API. It backs the client's integration tests and the local dev server; it
// keeps everything in maps and slices so tests need no external services.
package mockapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/streetbazaar/storefront/pkg/models"
)

// Server holds the in-memory marketplace state behind the mock endpoints
type Server struct {
	mu        sync.Mutex
	users     map[string]*models.User // by user id
	emails    map[string]string       // email -> user id
	passwords map[string]string       // user id -> bcrypt hash
	tokens    map[string]string       // bearer token -> user id
	products  []*models.Product
	orders    []*models.Order
}

// New creates a server seeded with the demo vendors, suppliers and products
func New() *Server {
	s := &Server{
		users:     make(map[string]*models.User),
		emails:    make(map[string]string),
		passwords: make(map[string]string),
		tokens:    make(map[string]string),
	}
	s.seed()
	return s
}

// Engine builds the gin engine with all routes mounted under /api
func (s *Server) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := engine.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "StreetBazaar API is running!"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", s.register)
			auth.POST("/login", s.login)
			auth.GET("/me", s.authRequired(), s.me)
		}

		products := api.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/categories", s.listCategories)
			products.GET("/:id", s.getProduct)
			products.POST("", s.authRequired(), s.createProduct)
		}

		orders := api.Group("/orders")
		orders.Use(s.authRequired())
		{
			orders.GET("", s.listOrders)
			orders.POST("", s.createOrder)
			orders.PUT("/:id/status", s.updateOrderStatus)
		}
	}

	return engine
}
