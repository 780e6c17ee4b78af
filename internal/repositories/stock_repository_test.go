package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

func TestStockRepository_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	repo := NewStockRepository(database)

	s, err := repo.GetOrCreate(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", s.Ticker)
	assert.Equal(t, "AAPL", s.Name)

	// an existing record keeps its name
	require.NoError(t, database.Model(&models.Stock{}).Where("ticker = ?", "AAPL").Update("name", "Apple Inc.").Error)
	s, err = repo.GetOrCreate(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", s.Name)

	var count int64
	require.NoError(t, database.Model(&models.Stock{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStockRepository_GetByTickerNotFound(t *testing.T) {
	repo := NewStockRepository(newTestDB(t))

	_, err := repo.GetByTicker(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
