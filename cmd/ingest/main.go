package main

import (
	"context"
	"flag"
	"log"
	"time"

	"hr-assist-be/internal/bootstrap"
	"hr-assist-be/internal/config"
	"hr-assist-be/pkg/database"
)

func main() {
	dir := flag.String("dir", "./policies", "directory containing policy documents (.txt, .md)")
	wait := flag.Duration("wait", 30*time.Second, "how long to wait for the embedding consumer to drain")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// The embedding consumer must run in-process: the gochannel pubsub is
	// not durable, so published chunks would be lost otherwise.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := container.ConsumerService.Consume(ctx); err != nil {
			log.Printf("Consumer error: %v", err)
		}
	}()

	log.Printf("Ingesting policy documents from %s ...", *dir)
	result, err := container.IngestionService.IngestDirectory(ctx, *dir)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	log.Printf("Queued %d documents (%d skipped)", len(result.Ingested), len(result.Skipped))

	// Embedding happens asynchronously; give the consumer time to finish.
	log.Printf("Waiting %s for embeddings to complete...", *wait)
	time.Sleep(*wait)

	log.Println("✅ Ingestion run finished")
}
