// Package storage keeps user avatars in S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/mydocs-backend/internal/config"
)

var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// IsAllowedAvatarType reports whether contentType may be stored as an avatar.
func IsAllowedAvatarType(contentType string) bool {
	_, ok := avatarExtensions[contentType]
	return ok
}

// Avatars stores avatar images in a single bucket.
type Avatars struct {
	client  *minio.Client
	bucket  string
	baseURL string
	log     *slog.Logger
}

// New creates an avatar store from cfg. The bucket is not checked until
// EnsureBucket is called.
func New(cfg config.StorageConfig, logger *slog.Logger) (*Avatars, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = client.EndpointURL().String() + "/" + cfg.Bucket
	}

	return &Avatars{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.With("component", "storage"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (a *Avatars) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("storage: check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("storage: create bucket %s: %w", a.bucket, err)
	}
	a.log.InfoContext(ctx, "bucket created", slog.String("bucket", a.bucket))
	return nil
}

// PutAvatar uploads an avatar for userID and returns its public URL.
// Every upload gets a fresh object name so cached URLs never go stale.
func (a *Avatars) PutAvatar(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("storage: unsupported content type %q", contentType)
	}

	key := ObjectKey(userID, uuid.New(), ext)
	_, err := a.client.PutObject(ctx, a.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}

	return PublicURL(a.baseURL, key), nil
}

// DeleteAvatar removes the object behind a URL previously returned by PutAvatar.
// URLs that do not point into this store are ignored.
func (a *Avatars) DeleteAvatar(ctx context.Context, avatarURL string) error {
	prefix := a.baseURL + "/"
	if !strings.HasPrefix(avatarURL, prefix) {
		return nil
	}
	key, err := url.PathUnescape(strings.TrimPrefix(avatarURL, prefix))
	if err != nil {
		return nil
	}

	if err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: remove %s: %w", key, err)
	}
	return nil
}

// ObjectKey names an avatar object.
func ObjectKey(userID, objectID uuid.UUID, ext string) string {
	return "avatars/" + userID.String() + "/" + objectID.String() + "." + ext
}

// PublicURL joins the public base URL and an object key.
func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}
