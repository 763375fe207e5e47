package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeline/storeline-server/internal/logger"
	servermocks "github.com/storeline/storeline-server/internal/mocks"
	"github.com/storeline/storeline-server/internal/model"
)

func TestProduct_List(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.ProductStore{}
	storage := &servermocks.Storage{}

	products := []model.Product{
		{ID: uuid.New(), Name: "Keyboard", PriceCents: 8999, ImageKey: "products/keyboard.jpg"},
		{ID: uuid.New(), Name: "Gift Card", PriceCents: 2500},
	}

	store.On("List", ctx).Return(products, nil).Once()
	storage.On("Exists", ctx, "products/keyboard.jpg").Return(true, nil).Once()
	storage.On("PresignedGet", ctx, "products/keyboard.jpg", 15*time.Minute).
		Return("https://minio.local/keyboard.jpg?sig=abc", nil).Once()

	svc := NewProduct(store, storage, 15*time.Minute, logger.New(0))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://minio.local/keyboard.jpg?sig=abc", got[0].ImageURL)
	assert.Empty(t, got[1].ImageURL)
	storage.AssertExpectations(t)
}

func TestProduct_List_MissingImageObject(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.ProductStore{}
	storage := &servermocks.Storage{}

	store.On("List", ctx).Return([]model.Product{
		{ID: uuid.New(), Name: "Keyboard", ImageKey: "products/gone.jpg"},
	}, nil).Once()
	storage.On("Exists", ctx, "products/gone.jpg").Return(false, nil).Once()

	svc := NewProduct(store, storage, 15*time.Minute, logger.New(0))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got[0].ImageURL)
}

func TestProduct_List_StorageErrorDegrades(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.ProductStore{}
	storage := &servermocks.Storage{}

	store.On("List", ctx).Return([]model.Product{
		{ID: uuid.New(), Name: "Keyboard", ImageKey: "products/keyboard.jpg"},
	}, nil).Once()
	storage.On("Exists", ctx, "products/keyboard.jpg").Return(false, assert.AnError).Once()

	svc := NewProduct(store, storage, 15*time.Minute, logger.New(0))

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got[0].ImageURL)
}

func TestProduct_List_StoreError(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.ProductStore{}
	storage := &servermocks.Storage{}

	store.On("List", ctx).Return(nil, assert.AnError).Once()

	svc := NewProduct(store, storage, 15*time.Minute, logger.New(0))

	_, err := svc.List(ctx)
	require.Error(t, err)
}
