package service

import (
	"context"
	"fmt"
	"time"

	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
)

// Product serves catalog listings, attaching presigned image URLs from
// object storage.
type Product struct {
	productStore model.ProductStore
	storage      model.Storage
	urlTTL       time.Duration
	logger       *logger.Logger
}

func NewProduct(
	productStore model.ProductStore,
	storage model.Storage,
	urlTTL time.Duration,
	logger *logger.Logger,
) *Product {
	return &Product{
		productStore: productStore,
		storage:      storage,
		urlTTL:       urlTTL,
		logger:       logger,
	}
}

// List returns all products. A missing or unreachable image object
// degrades to an empty image URL and never fails the listing.
func (s *Product) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	for i := range products {
		if products[i].ImageKey == "" {
			continue
		}

		exists, err := s.storage.Exists(ctx, products[i].ImageKey)
		if err != nil || !exists {
			if err != nil {
				s.logger.Error("Product service: failed to stat image object",
					"product_id", products[i].ID,
					"image_key", products[i].ImageKey,
					"error", err.Error())
			}
			continue
		}

		url, err := s.storage.PresignedGet(ctx, products[i].ImageKey, s.urlTTL)
		if err != nil {
			s.logger.Error("Product service: failed to presign image url",
				"product_id", products[i].ID,
				"image_key", products[i].ImageKey,
				"error", err.Error())
			continue
		}
		products[i].ImageURL = url
	}

	return products, nil
}
