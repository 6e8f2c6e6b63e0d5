// Package storage stores profile pictures behind a backend-agnostic
// interface, on the local filesystem in development and S3 in
// production.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Storage stores and serves profile pictures
type Storage interface {
	// Put stores a picture for the profile and returns its storage key
	Put(ctx context.Context, profileID uuid.UUID, filename string, data io.Reader) (string, error)

	// Get retrieves a picture by storage key
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a picture by storage key
	Delete(ctx context.Context, key string) error
}

// BackendType selects the storage backend
type BackendType string

const (
	BackendLocal BackendType = "local"
	BackendS3    BackendType = "s3"
)

// Config holds storage configuration
type Config struct {
	Backend      BackendType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv() (Storage, error) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "local" // Default to local for development
	}

	switch BackendType(backend) {
	case BackendLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/pictures"
		}
		return NewLocalStorage(localPath)

	case BackendS3:
		cfg := Config{
			Backend:      BackendS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// allowedImageExtensions limits uploads to the image formats the
// profile pages render
var allowedImageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// ImageContentType maps a picture filename to its content type, or
// fails for anything that is not a supported image
func ImageContentType(filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}
	return contentType, nil
}

// pictureKey derives the storage key for a profile's picture. One
// picture per profile: re-uploading overwrites the previous one.
func pictureKey(profileID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("profiles/%s/picture%s", profileID, ext)
}

// ValidPictureKey reports whether key has the exact shape pictureKey
// produces. Serving paths must check this before touching a backend so
// a request key can never address anything outside the picture tree.
func ValidPictureKey(key string) bool {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != "profiles" {
		return false
	}
	if _, err := uuid.Parse(parts[1]); err != nil {
		return false
	}
	ext := path.Ext(parts[2])
	if _, ok := allowedImageExtensions[ext]; !ok {
		return false
	}
	return parts[2] == "picture"+ext
}
