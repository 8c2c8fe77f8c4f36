package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"menu-builder/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Kinds of media the service stores. The kind is the key prefix, so logos
// and dish images can be listed and lifecycled independently.
const (
	KindLogo = "logos"
	KindDish = "dishes"
)

// MaxUploadBytes caps a single image upload.
const MaxUploadBytes = 10 << 20

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Object describes a stored media object.
type Object struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Service stores restaurant logos and dish images in object storage. The
// returned keys are what drafts carry in logoKey and imageKey fields.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new media service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, bucket: bucket, logger: logger}
}

// EnsureBucket creates the media bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket check: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("bucket create: %w", err)
	}
	s.logger.Info("Media bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Upload stores one image under a fresh key and returns its descriptor.
func (s *Service) Upload(ctx context.Context, kind, contentType string, size int64, reader io.Reader) (*Object, error) {
	if kind != KindLogo && kind != KindDish {
		return nil, fmt.Errorf("unknown media kind %q", kind)
	}
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	if size <= 0 || size > MaxUploadBytes {
		return nil, fmt.Errorf("upload size %d out of range", size)
	}

	key := kind + "/" + strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	info, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("media upload: %w", err)
	}

	s.logger.Info("Media uploaded",
		zap.String("key", key),
		zap.Int64("size", info.Size),
	)
	return &Object{Key: key, ContentType: contentType, Size: info.Size}, nil
}

// Get streams a stored object. The caller must close the reader.
func (s *Service) Get(ctx context.Context, key string) (io.ReadCloser, *Object, error) {
	if err := validKey(key); err != nil {
		return nil, nil, err
	}
	stat, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("media stat: %w", err)
	}
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("media read: %w", err)
	}
	return reader, &Object{Key: key, ContentType: stat.ContentType, Size: stat.Size}, nil
}

// Delete removes a stored object. Deleting an absent key is not an error.
func (s *Service) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("media delete: %w", err)
	}
	return nil
}

// validKey rejects traversal attempts and keys outside the known prefixes.
func validKey(key string) error {
	clean := path.Clean(key)
	if clean != key || strings.Contains(key, "..") {
		return fmt.Errorf("invalid media key %q", key)
	}
	if !strings.HasPrefix(key, KindLogo+"/") && !strings.HasPrefix(key, KindDish+"/") {
		return fmt.Errorf("invalid media key %q", key)
	}
	return nil
}
