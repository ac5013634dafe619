package main

import (
	"context"
	"log"
	"os"

	"talabak/internal/address"
	"talabak/internal/cart"
	"talabak/internal/db"
	"talabak/internal/events"
	"talabak/internal/geo"
	"talabak/internal/profile"
	"talabak/internal/router"
	"talabak/internal/shop"
	"talabak/internal/storage"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── EVENTS ─────────────────────────
	var publisher events.Publisher = events.NopPublisher{}
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		conn, err := amqp.Dial(amqpURL)
		if err != nil {
			log.Fatal("AMQP connect failed:", err)
		}
		defer conn.Close()

		rabbit, err := events.NewRabbitPublisher(conn)
		if err != nil {
			log.Fatal("AMQP publisher init failed:", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := profile.NewPostgresUserRepository(pgDB)
	shopRepo := shop.NewPostgresRepository(pgDB)
	cartRepo := cart.NewPostgresRepository(pgDB)
	geoRepo := geo.NewPostgresRepository(pgDB)
	addressRepo := address.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	profileService := profile.NewService(userRepo)
	shopService := shop.NewService(shopRepo, r2Client)
	cartStore := cart.NewStore(cartRepo, shopService)
	addressService := address.NewService(addressRepo)
	geoClient := geo.NewClient(os.Getenv("GEOCODER_BASE_URL"))

	// ───────────────────────── HANDLERS ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Profile: profile.NewHandler(profileService),
		Cart:    cart.NewHandler(cartStore, publisher),
		Shop:    shop.NewHandler(shopService),
		Geo:     geo.NewHandler(geoClient, geoRepo),
		Address: address.NewHandler(addressService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
