package router

import (
	"time"

	"talabak/internal/address"
	"talabak/internal/cart"
	"talabak/internal/geo"
	"talabak/internal/middleware"
	"talabak/internal/profile"
	"talabak/internal/shop"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects the per-module handlers the router mounts.
type Handlers struct {
	Profile *profile.Handler
	Cart    *cart.Handler
	Shop    *shop.Handler
	Geo     *geo.Handler
	Address *address.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Profile.Register)
		auth.POST("/login", h.Profile.Login)
	}

	// Public directory and geocoding surface.
	r.GET("/shops", h.Shop.ListShops)
	r.GET("/geo/config", h.Geo.GetConfig)
	r.GET("/geo/search", h.Geo.Search)
	r.GET("/addresses/governorates", h.Address.ListGovernorates)

	// Everything past here acts on behalf of one user.
	identified := r.Group("/")
	identified.Use(middleware.Identify())
	{
		identified.GET("/profile", h.Profile.GetProfile)

		identified.POST("/shops", h.Shop.CreateShop)
		identified.GET("/shops/mine", h.Shop.MyShops)
		identified.POST("/shops/:id/images", h.Shop.UploadImages)

		identified.GET("/cart", h.Cart.GetCart)
		identified.POST("/cart/items", h.Cart.AddItem)
		identified.POST("/cart/items/resolve", h.Cart.AddItemResolved)
		identified.POST("/cart/items/:productId/increase", h.Cart.IncreaseItem)
		identified.POST("/cart/items/:productId/decrease", h.Cart.DecreaseItem)
		identified.DELETE("/cart/items/:productId", h.Cart.RemoveItem)
		identified.GET("/cart/summary", h.Cart.GetSummary)
		identified.POST("/cart/checkout", h.Cart.Checkout)

		identified.GET("/geo/reverse", h.Geo.Reverse)
		identified.GET("/geo/location", h.Geo.GetLocation)
		identified.PUT("/geo/location", h.Geo.PutLocation)

		identified.GET("/addresses", h.Address.ListAddresses)
		identified.POST("/addresses", h.Address.CreateAddress)
		identified.PUT("/addresses/:id", h.Address.UpdateAddress)
		identified.DELETE("/addresses/:id", h.Address.DeleteAddress)
	}

	return r
}
