package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

var hundred = decimal.NewFromInt(100)

type returnCalculator struct {
	prices repositories.PriceBarRepository
	logger *zap.Logger
}

// NewReturnCalculator creates a calculator reading boundary closes from the price store
func NewReturnCalculator(prices repositories.PriceBarRepository, logger *zap.Logger) ReturnCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &returnCalculator{prices: prices, logger: logger}
}

// CalculateReturn values each position at the first and last close inside [start, end].
// A position with no bar in the window is left out of the report entirely.
func (c *returnCalculator) CalculateReturn(ctx context.Context, positions []models.Position, start, end time.Time) (*models.ReturnReport, error) {
	start = models.TruncateToDate(start)
	end = models.TruncateToDate(end)

	report := &models.ReturnReport{
		Period:           models.Period{StartDate: start, EndDate: end},
		Holdings:         make([]models.HoldingReturn, 0, len(positions)),
		TotalStartValue:  decimal.Zero,
		TotalEndValue:    decimal.Zero,
		TotalReturn:      decimal.Zero,
		ReturnPercentage: decimal.Zero,
	}

	for _, p := range positions {
		ticker := models.NormalizeTicker(p.Ticker)
		bars, err := c.prices.RangeQuery(ctx, ticker, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load prices for %s: %w", ticker, err)
		}
		if len(bars) == 0 {
			c.logger.Debug("no price data in range, position skipped",
				zap.String("ticker", ticker),
				zap.String("start", models.FormatDate(start)),
				zap.String("end", models.FormatDate(end)))
			continue
		}

		h := holdingReturn(ticker, p.Quantity, bars[0].Close, bars[len(bars)-1].Close)
		report.Holdings = append(report.Holdings, h)
		report.TotalStartValue = report.TotalStartValue.Add(h.StartValue)
		report.TotalEndValue = report.TotalEndValue.Add(h.EndValue)
	}

	report.TotalReturn = report.TotalEndValue.Sub(report.TotalStartValue)
	report.ReturnPercentage = percentOf(report.TotalReturn, report.TotalStartValue)
	return report, nil
}

func holdingReturn(ticker string, quantity int64, startPrice, endPrice decimal.Decimal) models.HoldingReturn {
	qty := decimal.NewFromInt(quantity)
	startValue := startPrice.Mul(qty)
	endValue := endPrice.Mul(qty)
	return models.HoldingReturn{
		Ticker:           ticker,
		Quantity:         quantity,
		StartPrice:       startPrice,
		EndPrice:         endPrice,
		StartValue:       startValue,
		EndValue:         endValue,
		Return:           endValue.Sub(startValue),
		ReturnPercentage: percentOf(endPrice.Sub(startPrice), startPrice),
	}
}

// percentOf returns change/base*100, or 0 when base is 0.
func percentOf(change, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return change.Div(base).Mul(hundred)
}
