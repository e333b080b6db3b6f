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

	"overcooked-storefront/config"
	httpapi "overcooked-storefront/storefront-svc/internal/api/http"
	"overcooked-storefront/storefront-svc/internal/service"
	"overcooked-storefront/storefront-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

const defaultCartTTL = 7 * 24 * time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.OrdersTopic)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cartStore := storage.NewRedisCartStore(rdb, config.GetEnvDuration("CART_TTL", defaultCartTTL))
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost")}

	catalogSvc := service.NewCatalogService(repo)
	settingsSvc := service.NewSettingsService(repo)
	cartSvc := service.NewCartService(cartStore, repo, settingsSvc, time.Now)
	checkoutSvc := service.NewCheckoutService(cartSvc, settingsSvc, repo, qr, publisher)
	orderSvc := service.NewOrderService(repo, qr)

	handler := httpapi.NewHandler(catalogSvc, cartSvc, checkoutSvc, orderSvc, settingsSvc)

	srv := &http.Server{
		Addr:              config.GetEnv("HTTP_ADDR", ":8081"),
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[storefront-svc] starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("[storefront-svc] shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("[storefront-svc] server error: ", err)
	}
}
