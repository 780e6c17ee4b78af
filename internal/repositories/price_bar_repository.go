package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tropicaldog17/stockfolio/internal/db"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

// priceBarUpdateColumns are overwritten together when a bar already exists.
var priceBarUpdateColumns = []string{
	"open_price",
	"high_price",
	"low_price",
	"close_price",
	"volume",
	"updated_at",
}

type priceBarRepository struct {
	db *db.DB
}

// NewPriceBarRepository creates a new price bar repository
func NewPriceBarRepository(database *db.DB) PriceBarRepository {
	return &priceBarRepository{db: database}
}

func (r *priceBarRepository) Upsert(ctx context.Context, bar *models.PriceBar) error {
	if err := upsertBar(r.db.WithContext(ctx), bar); err != nil {
		return fmt.Errorf("failed to upsert price bar %s %s: %w", bar.Ticker, models.FormatDate(bar.Date), err)
	}
	return nil
}

func (r *priceBarRepository) UpsertMany(ctx context.Context, bars []*models.PriceBar) (int, error) {
	if len(bars) == 0 {
		return 0, nil
	}
	written := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, bar := range bars {
			if err := upsertBar(tx, bar); err != nil {
				return fmt.Errorf("failed to upsert price bar %s %s: %w", bar.Ticker, models.FormatDate(bar.Date), err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func (r *priceBarRepository) RangeQuery(ctx context.Context, ticker string, start, end time.Time) ([]*models.PriceBar, error) {
	bars := []*models.PriceBar{}
	err := r.db.WithContext(ctx).
		Where("stock_ticker = ? AND date >= ? AND date <= ?", ticker, models.TruncateToDate(start), models.TruncateToDate(end)).
		Order("date ASC").
		Find(&bars).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query prices for %s: %w", ticker, err)
	}
	return bars, nil
}

func upsertBar(tx *gorm.DB, bar *models.PriceBar) error {
	bar.Date = models.TruncateToDate(bar.Date)
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stock_ticker"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(priceBarUpdateColumns),
	}).Create(bar).Error
}
