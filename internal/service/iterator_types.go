package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"tilemap/internal/models"
)

// MessageIterator is the contract for consuming messages from a Kafka topic.
// Implementations own the lifecycle of the underlying consumer connection;
// the service's Iterator only reads from it.
type MessageIterator interface {
	// Messages returns a receive-only channel of Kafka messages. The
	// channel is closed by the implementation when the consumer is stopped
	// or the source is exhausted.
	Messages() <-chan kafka.Message

	// CommitOffset acknowledges that a message has been processed. An
	// error is returned if the commit fails.
	CommitOffset(ctx context.Context, msg kafka.Message) error
}

// DocumentLoader fetches and decodes one tile-map document from object
// storage. Implementations should be read-only and honor the context for
// cancellation.
type DocumentLoader func(ctx context.Context, bucket, key string) (models.Document, error)

// FetchedDocument pairs a loaded tile-map document with the storage key that
// identified it, so downstream warnings can name their source.
type FetchedDocument struct {
	Key string
	Doc models.Document
}
