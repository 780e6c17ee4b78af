package services

import (
	"context"
	"time"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

type stockService struct {
	stocks repositories.StockRepository
	prices repositories.PriceBarRepository
}

// NewStockService creates a new stock lookup service
func NewStockService(stocks repositories.StockRepository, prices repositories.PriceBarRepository) StockService {
	return &stockService{stocks: stocks, prices: prices}
}

// GetStock is the explicit existence check: range queries cannot tell an
// unknown ticker from a gap.
func (s *stockService) GetStock(ctx context.Context, ticker string) (*models.Stock, error) {
	ticker = models.NormalizeTicker(ticker)
	if err := models.ValidateTicker(ticker); err != nil {
		return nil, err
	}
	return s.stocks.GetByTicker(ctx, ticker)
}

func (s *stockService) GetPrices(ctx context.Context, ticker string, start, end time.Time) ([]*models.PriceBar, error) {
	ticker = models.NormalizeTicker(ticker)
	if err := models.ValidateTicker(ticker); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, &apperrors.ErrValidation{Field: "start_date", Message: "must be before or equal to end_date"}
	}
	return s.prices.RangeQuery(ctx, ticker, models.TruncateToDate(start), models.TruncateToDate(end))
}
