package model

import (
	"context"
	"io"
	"time"
)

// Storage provides read access to stored document files.
type Storage interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	// PresignedURL returns a time-limited direct download URL for the object.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
