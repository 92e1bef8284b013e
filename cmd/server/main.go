package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/checkout"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/config"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/database"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/handler"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/mailer"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/middleware"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/payment"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/queue"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/repository"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis backs the checkout intent store plus the optional response
	// cache and rate limiter. A nil client disables the optional parts
	// but the intent store is mandatory for the booking flow.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Fatal("redis: connection failed")
	}
	// The intent must outlive the seat holds it refers to.
	intentTTL := 2 * time.Duration(cfg.HoldTTLMin) * time.Minute
	intents := checkout.NewRedisStore(rdb, intentTTL)

	movieRepo := repository.NewMovieRepo(db)
	theaterRepo := repository.NewTheaterRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	payments := payment.NewStripeBridge(cfg.StripeSecretKey)
	mail := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	catalogHandler := handler.NewCatalogHandler(movieRepo, theaterRepo)
	bookingHandler := handler.NewBookingHandler(cfg, movieRepo, theaterRepo, seatRepo, bookingRepo, userRepo, intents, payments, mail)
	adminHandler := handler.NewAdminHandler(cfg, bookingRepo)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterCatalog(e, catalogHandler,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterBooking(e, bookingHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
