package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines read operations for the product catalog.
type ProductStore interface {
	List(ctx context.Context) ([]Product, error)
}

// Product represents a catalog entry. ImageKey references an object in
// the image storage bucket; ImageURL is filled in by the service layer
// with a presigned link and is never persisted.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	ImageKey    string    `json:"-"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
