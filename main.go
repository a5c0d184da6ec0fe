package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"shopapi/config"
	"shopapi/handlers"
	"shopapi/middleware"
	"shopapi/storage"
)

func main() {
	cfg := config.Load()

	// Connect to the document store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, cleanup, err := storage.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	// Redis is optional; without it the rate limiter is a no-op
	redisClient := config.InitRedis(cfg.RedisAddr)

	// Create a new Gin router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health-check", handlers.CheckConnection)

	// Handlers with the store injected
	productHandler := handlers.NewProductHandler(store)
	categoryHandler := handlers.NewCategoryHandler(store)
	orderHandler := handlers.NewOrderHandler(store, cfg.TaxRate)
	authHandler := handlers.NewAuthHandler(store, []byte(cfg.JWTSecret))
	transactionHandler := handlers.NewTransactionHandler(store)

	api := r.Group("/api")
	{
		// Product routes
		api.POST("/products", productHandler.CreateProduct)
		api.GET("/products", productHandler.GetAllProducts)
		api.GET("/products/search", productHandler.SearchProducts)
		api.POST("/products/bulk", productHandler.BulkImport)

		// Category routes
		api.POST("/products-category", categoryHandler.CreateCategory)
		api.GET("/product-category", categoryHandler.GetCategories)

		// Order routes
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.GetOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)

		// Auth routes (rate limited)
		limiter := middleware.RateLimiter(redisClient)
		api.POST("/auth/google", limiter, authHandler.GoogleAuth)
		api.POST("/auth/signup", limiter, authHandler.Signup)
		api.POST("/auth/login", limiter, authHandler.Login)
		api.POST("/auth/forgot-password", limiter, authHandler.ForgotPassword)
		api.GET("/auth/users", authHandler.GetUsers)
		api.GET("/auth/users/search", authHandler.SearchUsers)

		// Transaction routes (Spendly)
		api.POST("/transactions", transactionHandler.CreateTransaction)
		api.GET("/transactions", transactionHandler.GetTransactions)
	}

	// Admin-only routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)), middleware.AdminRequired())
	{
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
	}

	runServer(&http.Server{Addr: ":" + cfg.Port, Handler: r})
}

// runServer starts the HTTP server and shuts it down gracefully on SIGINT or
// SIGTERM, letting in-flight requests drain.
func runServer(srv *http.Server) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	grp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	grp.Go(func() error {
		log.Printf("Server starting on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	grp.Go(func() error {
		<-shutdownCtx.Done()
		log.Println("shutting down, waiting for pending requests...")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})

	if err := grp.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("server stopped")
}
