package model

import (
	"context"
	"time"
)

// Storage provides read access to the product image bucket.
type Storage interface {
	PresignedGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}
