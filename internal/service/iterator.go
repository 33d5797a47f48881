// Package service connects the Kafka notification stream to object storage:
// it consumes MinIO bucket-notification events, loads each referenced
// tile-map document through a pluggable DocumentLoader, and yields the
// documents on a channel for extraction.
package service

import (
	"context"
	"encoding/json"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7/pkg/notification"
)

// Iterator consumes messages from a MessageIterator, interprets each message
// as a MinIO/S3 notification event, and loads the referenced document.
//
// The Iterator does not manage the lifecycle of the message source; callers
// start and stop their consumer outside.
type Iterator struct {
	msgIterator MessageIterator
	loader      DocumentLoader
}

// NewIterator constructs an Iterator for the provided message source and
// document loader. It spawns a goroutine per Documents() call to stream
// results.
func NewIterator(iterator MessageIterator, loader DocumentLoader) *Iterator {
	return &Iterator{
		msgIterator: iterator,
		loader:      loader,
	}
}

// Documents streams the tile-map documents referenced by incoming events.
// Messages that fail to deserialize or whose object cannot be loaded are
// logged and skipped; the offset of each successfully loaded document is
// committed afterwards. The returned channel is closed when the underlying
// Messages() channel closes.
func (it *Iterator) Documents(ctx context.Context) <-chan *FetchedDocument {
	out := make(chan *FetchedDocument)
	go func() {
		defer close(out)

		for msg := range it.msgIterator.Messages() {
			var event notification.Info
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("Error unmarshalling notification event: %v", err)
				continue
			}
			if len(event.Records) == 0 {
				log.Printf("Notification event with no records, skipping")
				continue
			}
			s3 := event.Records[0].S3
			objectKey, err := url.QueryUnescape(s3.Object.Key)
			if err != nil {
				log.Printf("Error decoding object key %q: %v", s3.Object.Key, err)
				continue
			}

			doc, err := it.loader(ctx, s3.Bucket.Name, objectKey)
			if err != nil {
				log.Printf("Error loading document: %v", err)
				continue
			}

			out <- &FetchedDocument{Key: objectKey, Doc: doc}

			if err := it.msgIterator.CommitOffset(ctx, msg); err != nil {
				log.Printf("Failed to commit offset: %v", err)
			}
		}
	}()
	return out
}
