package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/astrachan163/aether-apothecary/internal/modules/aigen"
	"github.com/astrachan163/aether-apothecary/internal/modules/auth"
	"github.com/astrachan163/aether-apothecary/internal/modules/catalog"
	"github.com/astrachan163/aether-apothecary/internal/modules/checkout"
	"github.com/astrachan163/aether-apothecary/internal/modules/media"
	"github.com/astrachan163/aether-apothecary/internal/modules/order"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Admin gate ──────────────────────────────────────────
	authService := auth.NewService(auth.Config{
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Password:     os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:    mustEnv("JWT_SECRET"),
	})
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	products, ingredients, stories := catalog.SeedData()
	catalogRepo := catalog.NewMemoryRepository(products, ingredients, stories)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService, authService.RequireAdmin).RegisterRoutes(router)

	// ── Checkout ────────────────────────────────────────────
	var gateway checkout.Gateway
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		gateway = checkout.NewStripeGateway(key, os.Getenv("CHECKOUT_SUCCESS_URL"), os.Getenv("CHECKOUT_CANCEL_URL"), "")
	} else {
		log.Println("STRIPE_SECRET_KEY not set, using sandbox gateway")
		gateway = checkout.NewSandboxGateway()
	}
	checkoutService := checkout.NewService(gateway, "usd")
	checkout.NewHandler(checkoutService).RegisterRoutes(router)

	// ── Orders & webhooks ───────────────────────────────────
	var orderRepo order.Repository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")
		orderRepo = order.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, orders held in memory")
		orderRepo = order.NewMemoryRepository()
	}
	orderService := order.NewService(orderRepo, mustEnv("STRIPE_WEBHOOK_SECRET"))
	order.NewHandler(orderService, authService.RequireAdmin).RegisterRoutes(router)

	// ── AI generation ───────────────────────────────────────
	generator, err := aigen.NewGenerator(os.Getenv("GENAI_PROVIDER"), os.Getenv("GENAI_MODEL"), os.Getenv("GOOGLE_API_KEY"))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generation backed by %s", generator.Model())
	aigenService := aigen.NewService(generator)
	aigen.NewHandler(aigenService, authService.RequireAdmin).RegisterRoutes(router)

	// ── Media uploads ───────────────────────────────────────
	var mediaService media.Service
	if cloudURL := os.Getenv("CLOUDINARY_URL"); cloudURL != "" {
		mediaService, err = media.NewCloudinaryService(cloudURL, "aether-apothecary")
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, media uploads return placeholders")
		mediaService = media.NewDevService()
	}
	media.NewHandler(mediaService, authService.RequireAdmin).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Aether Apothecary API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s must be set", key)
	}
	return v
}
