package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"tour-booking-platform/internal/config"
	"tour-booking-platform/internal/handlers"
	"tour-booking-platform/internal/middleware"
	"tour-booking-platform/internal/repositories"
	"tour-booking-platform/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Session cookie store scoping each browser to its own cart
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	// In-memory stores; state lives for the process lifetime
	catalogRepo := repositories.NewCatalogRepository()
	cartRepo := repositories.NewCartRepository()
	bookingRepo := repositories.NewBookingRepository()

	checkoutService := services.NewCheckoutService(catalogRepo, cartRepo, bookingRepo)
	stripeService := services.NewStripeService(services.StripeConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		SuccessURL:    cfg.Server.BaseURL + "/booking-success",
		CancelURL:     cfg.Server.BaseURL + "/cart",
	})

	experienceHandler := handlers.NewExperienceHandler(catalogRepo)
	cartHandler := handlers.NewCartHandler(cartRepo)
	bookingHandler := handlers.NewBookingHandler(checkoutService, bookingRepo)
	paymentHandler := handlers.NewPaymentHandler(checkoutService, bookingRepo, stripeService)

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoverMiddleware)
	r.Use(rateLimiter.Limit)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "200")
	})

	handlers.RegisterRoutes(r, sessionMiddleware, experienceHandler, cartHandler, bookingHandler, paymentHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.BaseURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Stripe-Signature"},
		AllowCredentials: true,
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s (%s)", addr, cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}
	log.Println("Server stopped")
}
