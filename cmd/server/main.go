package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/config"
	"github.com/iliyamo/garage-booking/internal/database"
	"github.com/iliyamo/garage-booking/internal/handler"
	"github.com/iliyamo/garage-booking/internal/middleware"
	"github.com/iliyamo/garage-booking/internal/repository"
	"github.com/iliyamo/garage-booking/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)
	garages := repository.NewGarageRepo(db)
	bookings := repository.NewBookingRepo(db)
	maint := repository.NewMaintenanceRepo(db)

	// Expired sessions are refused at lookup; the pruner just keeps the
	// table small.
	go repository.PruneSessions(context.Background(), sessions, time.Hour)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and garage cache disabled")
	}

	e := echo.New()
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, sessions))
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, garages, bookings, users, maint, rdb), cfg.SessionSecret, sessions)
	router.RegisterGarage(e, handler.NewGarageHandler(bookings), cfg.SessionSecret, sessions)
	router.RegisterCustomer(e, handler.NewCustomerHandler(bookings), cfg.SessionSecret, sessions)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
