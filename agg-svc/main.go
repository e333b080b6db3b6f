package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"overcooked-storefront/agg-svc/internal/service"
	"overcooked-storefront/agg-svc/internal/storage"
	"overcooked-storefront/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, config.GetEnv("KAFKA_GROUP_ID", "agg-svc-consumer"))
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	consumer.Start(ctx)

	log.Println("[agg-svc] shut down")
}
