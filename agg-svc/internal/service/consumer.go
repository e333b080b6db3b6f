package service

import (
	"context"
	"encoding/json"
	"log"

	"overcooked-storefront/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads the orders topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[agg-svc] Starting order consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("[agg-svc] Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[agg-svc] Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.OrderPlacedEvent {
		return
	}
	if len(event.Items) == 0 {
		log.Printf("[agg-svc] WARNING: order %d has no items, skipping", event.OrderID)
		return
	}

	log.Printf("[agg-svc] Processing order %d: %d lines, total %s",
		event.OrderID, len(event.Items), event.TotalAmount.StringFixed(2))

	if err := c.Store.RecordOrder(ctx, event); err != nil {
		log.Printf("[agg-svc] Error recording order %d: %v", event.OrderID, err)
		return
	}

	log.Printf("[agg-svc] Successfully processed order %d", event.OrderID)
}
