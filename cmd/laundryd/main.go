package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"laundry-booking-backend/config"
	"laundry-booking-backend/internal/api"
	"laundry-booking-backend/internal/db"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
	"laundry-booking-backend/internal/sweep"
)

func main() {
	logger := log.New(os.Stdout, "laundry-booking ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Auth.JWTSecret == "" {
		logger.Fatalf("auth.jwt_secret must be configured")
	}
	if cfg.Push.Enabled && (cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "") {
		logger.Fatalf("push is enabled but VAPID keys are not configured")
	}

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		logger.Fatalf("invalid booking.timezone %q: %v", cfg.Booking.Timezone, err)
	}

	machines := make([]slotcal.Machine, len(cfg.Booking.Machines))
	for i, m := range cfg.Booking.Machines {
		machines[i] = slotcal.Machine{ID: m.ID, DisplayName: m.DisplayName, Kind: m.Kind}
	}
	calendar := slotcal.New(machines, loc, cfg.Booking.GraceWindow)
	logger.Printf("slot calendar initialized with %d machines in %s", len(machines), cfg.Booking.Timezone)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	// Run the expired-slot sweeper in the background.
	sweeper := sweep.NewService(cfg, appStore, calendar)
	go sweeper.Run(ctx)

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	router := api.NewRouter(cfg, appStore, calendar, &webpushOptions)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
