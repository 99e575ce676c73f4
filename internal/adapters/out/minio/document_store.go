// Package minio stores uploaded paperwork in S3-compatible object storage.
package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DocumentStore persists manifests and proofs of delivery in a MinIO
// bucket. Object names are prefixed with a fresh UUID so repeated
// uploads of the same file never collide.
type DocumentStore struct {
	client *minio.Client
	bucket string
}

// NewDocumentStore connects to the MinIO endpoint and ensures the
// bucket exists.
func NewDocumentStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*DocumentStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object storage: %w", err)
	}

	store := &DocumentStore{client: client, bucket: bucket}
	if err := store.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// Put stores the object and returns its path within the bucket.
func (s *DocumentStore) Put(
	ctx context.Context,
	fileName string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	objectName := fmt.Sprintf("documents/%s-%s", uuid.NewString(), sanitizeFileName(fileName))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("store document %q: %w", fileName, err)
	}

	return objectName, nil
}

// Remove deletes a stored object. Removing a missing object is not an error.
func (s *DocumentStore) Remove(ctx context.Context, objectPath string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
}

func (s *DocumentStore) ensureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucket, err)
	}
	if !found {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", s.bucket, err)
		}
	}
	return nil
}

// sanitizeFileName strips directory components and whitespace from an
// uploaded file name.
func sanitizeFileName(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
}
