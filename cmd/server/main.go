package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env file loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/railway-reservation/internal/config"
	"github.com/iliyamo/railway-reservation/internal/database"
	"github.com/iliyamo/railway-reservation/internal/handler"
	"github.com/iliyamo/railway-reservation/internal/middleware"
	"github.com/iliyamo/railway-reservation/internal/queue"
	"github.com/iliyamo/railway-reservation/internal/repository"
	"github.com/iliyamo/railway-reservation/internal/router"
	queue_publisher "github.com/iliyamo/railway-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env wins

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBPath) // Open the SQLite store
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	seatRepo := repository.NewSeatRepo(db)
	trainRepo := repository.NewTrainRepo(db, seatRepo, cfg.TotalSeats)

	trainHandler := handler.NewTrainHandler(trainRepo, seatRepo)
	bookingHandler := handler.NewBookingHandler(seatRepo)

	// Redis is optional; with no client the limiter is a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterTrains(e, trainHandler, limiter)
	router.RegisterBookings(e, bookingHandler, limiter)

	// The ticket event consumer only runs when a broker is configured.
	if url := queue_publisher.BrokerURL(); url != "" {
		go func() {
			if err := queue.StartTicketConsumer(url); err != nil {
				log.Printf("ticket consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
