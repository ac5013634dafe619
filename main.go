package main

import (
	"log"
	"os"

	"talabak/internal/address"
	"talabak/internal/cart"
	"talabak/internal/geo"
	"talabak/internal/profile"
	"talabak/internal/router"
	"talabak/internal/shop"

	"github.com/joho/godotenv"
)

// Development entrypoint: everything in memory, no external services.
// The production wiring lives in cmd/api.
func main() {
	_ = godotenv.Load()

	shopService := shop.NewService(shop.NewInMemoryRepository(), nil)
	cartStore := cart.NewStore(cart.NewInMemoryRepository(), shopService)

	r := router.NewRouter(router.Handlers{
		Profile: profile.NewHandler(profile.NewService(profile.NewInMemoryUserRepository())),
		Cart:    cart.NewHandler(cartStore, nil),
		Shop:    shop.NewHandler(shopService),
		Geo:     geo.NewHandler(geo.NewClient(os.Getenv("GEOCODER_BASE_URL")), geo.NewInMemoryRepository()),
		Address: address.NewHandler(address.NewService(address.NewInMemoryRepository())),
	})

	log.Println("Server running on http://localhost:8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
