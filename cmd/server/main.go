package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/user-registry/internal/adapter/http/controller"
	"github.com/api-sage/user-registry/internal/adapter/http/middleware"
	"github.com/api-sage/user-registry/internal/adapter/http/router"
	"github.com/api-sage/user-registry/internal/adapter/repository/postgres"
	"github.com/api-sage/user-registry/internal/config"
	"github.com/api-sage/user-registry/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(startupCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	managerRepo := postgres.NewManagerRepository(db)

	seeded, err := managerRepo.SeedDefaults(startupCtx)
	if err != nil {
		log.Fatalf("seed managers: %v", err)
	}
	for _, manager := range seeded {
		log.Printf("seeded manager %s", manager.ManagerID)
	}

	userService := services.NewUserService(userRepo, managerRepo)
	userController := controller.NewUserController(userService)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.ChannelAuthEnabled() {
		authMiddleware = middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	}

	mux := router.New(userController, authMiddleware)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server started at %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
