package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "overcooked-storefront/analytics-svc/internal/api/http"
	"overcooked-storefront/analytics-svc/internal/service"
	"overcooked-storefront/analytics-svc/internal/storage"
	"overcooked-storefront/config"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	analyticsSvc := service.NewAnalyticsService(storage.NewLeaderboardStore(rdb), storage.NewCatalogStore(db), time.Now)

	srv := &http.Server{
		Addr:              config.GetEnv("HTTP_ADDR", ":8083"),
		Handler:           httpapi.NewRouter(httpapi.NewHandler(analyticsSvc)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[analytics-svc] starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("[analytics-svc] shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("[analytics-svc] server error: ", err)
	}
}
