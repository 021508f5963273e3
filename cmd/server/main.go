package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files during local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/business-insights/internal/config"
	"github.com/iliyamo/business-insights/internal/database"
	"github.com/iliyamo/business-insights/internal/handler"
	"github.com/iliyamo/business-insights/internal/middleware"
	"github.com/iliyamo/business-insights/internal/notify"
	"github.com/iliyamo/business-insights/internal/queue"
	"github.com/iliyamo/business-insights/internal/repository"
	"github.com/iliyamo/business-insights/internal/router"
)

func main() {
	_ = godotenv.Load() // Missing .env is fine in production

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// OTP emails are delivered asynchronously: handlers publish to the
	// broker and this worker drains the queue. It reconnects on its own,
	// so a broker outage never blocks the HTTP server.
	mailer := notify.NewMailer(cfg)
	go queue.StartOTPEmailConsumer(mailer)

	users := repository.NewUserRepo(db)
	businesses := repository.NewBusinessRepo(db)
	inventory := repository.NewInventoryRepo(db)
	sales := repository.NewSalesRepo(db)
	insights := repository.NewInsightRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users),
		Users:     handler.NewUserHandler(cfg, users),
		Business:  handler.NewBusinessHandler(businesses),
		Inventory: handler.NewInventoryHandler(inventory),
		Sales:     handler.NewSalesHandler(sales),
		Insights:  handler.NewInsightHandler(insights),
	}

	// The limiter degrades to a no-op when Redis is unreachable.
	var limiter echo.MiddlewareFunc
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled {
		limiter = middleware.NewAuthRateLimiter(rlCfg, config.NewRedisClient())
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, h.Auth, limiter)
	router.RegisterAPI(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
