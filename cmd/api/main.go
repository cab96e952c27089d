package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/homebase-apps/saved-locations-api/internal/adapters/httpapi"
	memlocationrepo "github.com/homebase-apps/saved-locations-api/internal/adapters/memory/locationrepo"
	postgres "github.com/homebase-apps/saved-locations-api/internal/adapters/postgres"
	pglocationrepo "github.com/homebase-apps/saved-locations-api/internal/adapters/postgres/locationrepo"
	"github.com/homebase-apps/saved-locations-api/internal/app/locations"
	platformclock "github.com/homebase-apps/saved-locations-api/internal/platform/clock"
	"github.com/homebase-apps/saved-locations-api/internal/platform/config"
	locationrepoport "github.com/homebase-apps/saved-locations-api/internal/ports/out/locationrepo"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	clk := platformclock.NewSystemClock()

	// Storage is an explicitly constructed handle with a clear close path,
	// not ambient process state.
	var (
		repo    locationrepoport.Repository
		cleanup func()
	)
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Fatalf("invalid postgres config: %v", err)
		}
		cleanup = pool.Close
		repo = pglocationrepo.NewRepo(pool)
	default:
		repo = memlocationrepo.NewRepo()
	}
	if cleanup != nil {
		defer cleanup()
	}

	svc := locations.NewService(repo, clk)
	handler := httpapi.NewRouter(httpapi.NewServer(svc))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on :%s (storage=%s)", cfg.Port, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
