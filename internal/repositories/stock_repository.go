package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tropicaldog17/stockfolio/internal/db"
	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

type stockRepository struct {
	db *db.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(database *db.DB) StockRepository {
	return &stockRepository{db: database}
}

// GetOrCreate returns the stock for ticker, inserting a placeholder first if
// none exists. Safe under concurrent callers for the same ticker.
func (r *stockRepository) GetOrCreate(ctx context.Context, ticker string) (*models.Stock, error) {
	return getOrCreateStock(r.db.WithContext(ctx), ticker)
}

func (r *stockRepository) GetByTicker(ctx context.Context, ticker string) (*models.Stock, error) {
	var s models.Stock
	err := r.db.WithContext(ctx).First(&s, "ticker = ?", ticker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.ErrNotFound{Resource: "stock", ID: ticker}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock %s: %w", ticker, err)
	}
	return &s, nil
}

func getOrCreateStock(tx *gorm.DB, ticker string) (*models.Stock, error) {
	if err := ensureStock(tx, ticker); err != nil {
		return nil, err
	}
	var s models.Stock
	if err := tx.First(&s, "ticker = ?", ticker).Error; err != nil {
		return nil, fmt.Errorf("failed to load stock %s: %w", ticker, err)
	}
	return &s, nil
}

func ensureStock(tx *gorm.DB, ticker string) error {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(models.NewPlaceholderStock(ticker)).Error
	if err != nil {
		return fmt.Errorf("failed to create stock %s: %w", ticker, err)
	}
	return nil
}
