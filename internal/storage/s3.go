// Package storage holds the S3/MinIO client used to fetch raw tile-map
// documents and to publish the merged address-map summary.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tilemap/internal/models"
)

// S3Service is a client for S3-compatible storage.
type S3Service struct {
	client *minio.Client
}

// NewS3Service connects to the MinIO server using credentials from
// environment variables.
func NewS3Service() (*S3Service, error) {
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if minioEndpoint == "" || minioAccessKey == "" || minioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	log.Println("Successfully connected to MinIO endpoint:", minioEndpoint)
	return &S3Service{client: minioClient}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *S3Service) EnsureBucket(ctx context.Context, bucketName, location string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %v", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return err
		}
	}
	return nil
}

// GetDocument retrieves a tile-map JSON object and decodes it. Numbers are
// decoded in their literal form so the extractor's integer validation works
// the same as for documents read from disk.
func (s *S3Service) GetDocument(ctx context.Context, bucketName, objectKey string) (models.Document, error) {
	object, err := s.client.GetObject(ctx, bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to get object from S3: %v", err)
	}
	defer object.Close()

	dec := json.NewDecoder(object)
	dec.UseNumber()

	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode JSON from stream: %v", err)
	}

	log.Printf("Retrieved tile-map document from bucket '%s' with key '%s'", bucketName, objectKey)
	return doc, nil
}

// StoreDocument uploads one raw tile-map document. Raw documents are
// immutable inputs, so an object that already exists under the key is left
// alone and the write is ignored.
func (s *S3Service) StoreDocument(ctx context.Context, bucketName, objectKey string, data []byte) error {
	_, err := s.client.StatObject(ctx, bucketName, objectKey, minio.StatObjectOptions{})
	if err == nil {
		log.Printf("Document '%s' already exists in bucket '%s'. Ignoring write operation.", objectKey, bucketName)
		return nil
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("failed to check for existing object: %v", err)
	}

	_, err = s.client.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to store document in S3: %v", err)
	}

	log.Printf("Stored new document in bucket '%s' with key '%s'", bucketName, objectKey)
	return nil
}

// StoreSummary uploads the serialized address-map summary, overwriting any
// previous version under the same key.
func (s *S3Service) StoreSummary(ctx context.Context, bucketName, objectKey string, data []byte) error {
	_, err := s.client.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to store summary in S3: %v", err)
	}

	log.Printf("Stored summary in bucket '%s' with key '%s'", bucketName, objectKey)
	return nil
}
