package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/exp/slog"

	"securenest/internal/app/server/config"
)

// Store uploads and deletes binary assets in one bucket. Object keys are
// generated here so callers never pick their own names.
type Store struct {
	client *minio.Client
	bucket string
	folder string
	useSSL bool
	log    *slog.Logger
}

// New connects to the object store and ensures the bucket exists.
func New(cfg *config.Config, log *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Minio.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Minio.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Minio.Bucket, err)
		}
	}

	return &Store{
		client: client,
		bucket: cfg.Minio.Bucket,
		folder: cfg.Minio.Folder,
		useSSL: cfg.Minio.UseSSL,
		log:    log.With(slog.String("component", "minio_store")),
	}, nil
}

// Upload stores data under a fresh object key and returns the public URL
// together with the key needed to delete the object later.
func (s *Store) Upload(ctx context.Context, data []byte, filename, contentType string) (string, string, error) {
	objectKey := s.objectKey(filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.log.Error("upload failed", "object_key", objectKey, "error", err)
		return "", "", fmt.Errorf("upload object: %w", err)
	}

	s.log.Debug("object uploaded", "object_key", objectKey, "size", len(data))
	return s.url(objectKey), objectKey, nil
}

func (s *Store) Delete(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		s.log.Error("delete failed", "object_key", objectKey, "error", err)
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

// objectKey builds "<folder>/<uuid><ext>"; the original filename contributes
// only its extension.
func (s *Store) objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(s.folder, uuid.NewString()+ext)
}

func (s *Store) url(objectKey string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, objectKey)
}
