// Command watcher keeps the address-map summary current as new tile-map
// documents land in the bucket: it consumes MinIO bucket-notification events
// from Kafka, loads each referenced document, extracts its location paths,
// merges them into the running summary, and stores the summary object back
// after every update.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tilemap/internal/env"
	"tilemap/internal/extract"
	"tilemap/internal/locmap"
	"tilemap/internal/models"
	"tilemap/internal/pipeline"
	"tilemap/internal/service"
	"tilemap/internal/storage"
	"tilemap/pkg/graceful"
	"tilemap/pkg/kafkaclient"
)

// tileUpdate carries one fetched document through the pipeline stages.
type tileUpdate struct {
	Key string
	Doc models.Document
	// Extracted is filled by the extract stage and consumed by the merge
	// stage.
	Extracted locmap.Map
}

func main() {
	summaryKey := flag.String("summary-key", "address-map.json", "object key for the stored summary")
	flag.Parse()

	env.LoadEnv()
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	kafkaBroker := env.MustGetEnv("KAFKA_BROKER")
	kafkaTopic := env.MustGetEnv("KAFKA_TOPIC")
	kafkaGroupID := env.MustGetEnv("KAFKA_GROUP_ID")
	bucket := env.MustGetEnv("TILEMAP_BUCKET_NAME")

	log.Printf("Connecting to Kafka broker: %s on topic: %s with group ID: %s", kafkaBroker, kafkaTopic, kafkaGroupID)

	consumer, err := kafkaclient.NewConsumer(kafkaTopic, kafkaGroupID, kafkaBroker)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer: %v", err)
	}

	s3Service, err := storage.NewS3Service()
	if err != nil {
		log.Fatal(err)
	}

	consumer.Start(ctx)

	iterator := service.NewIterator(consumer, func(ctx context.Context, bucket, key string) (models.Document, error) {
		return s3Service.GetDocument(ctx, bucket, key)
	})

	summary := locmap.New()

	extractStage := pipeline.NewStage(func(_ context.Context, item *tileUpdate) error {
		item.Extracted = extract.Document(item.Doc, item.Key)
		return nil
	})

	// The pipeline processes items one at a time, so this stage is the
	// summary's single writer.
	mergeStage := pipeline.NewStage(func(ctx context.Context, item *tileUpdate) error {
		summary.Merge(item.Extracted)
		fmt.Printf("Merged %s: %d locations, %d coordinates total\n", item.Key, len(summary), summary.CoordCount())

		data, err := summary.MarshalIndent()
		if err != nil {
			return err
		}
		return s3Service.StoreSummary(ctx, bucket, *summaryKey, data)
	})

	updates := make(chan *tileUpdate)
	go func() {
		defer close(updates)
		for fetched := range iterator.Documents(ctx) {
			updates <- &tileUpdate{Key: fetched.Key, Doc: fetched.Doc}
		}
	}()

	pipeline.New(extractStage, mergeStage).Process(ctx, updates)

	consumer.Stop()
	log.Println("Watcher finished, application exiting.")
}
