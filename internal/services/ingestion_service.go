package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

// DefaultLookbackDays is how far back a refresh reaches when nothing is configured.
const DefaultLookbackDays = 14

type ingestionService struct {
	stocks       repositories.StockRepository
	prices       repositories.PriceBarRepository
	provider     MarketDataProvider
	lookbackDays int
	now          func() time.Time
	logger       *zap.Logger
}

// NewIngestionService creates a new ingestion pipeline
func NewIngestionService(stocks repositories.StockRepository, prices repositories.PriceBarRepository, provider MarketDataProvider, lookbackDays int, logger *zap.Logger) IngestionService {
	return newIngestionService(stocks, prices, provider, lookbackDays, logger)
}

func newIngestionService(stocks repositories.StockRepository, prices repositories.PriceBarRepository, provider MarketDataProvider, lookbackDays int, logger *zap.Logger) *ingestionService {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ingestionService{
		stocks:       stocks,
		prices:       prices,
		provider:     provider,
		lookbackDays: lookbackDays,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *ingestionService) IngestTicker(ctx context.Context, ticker string) (*models.Stock, error) {
	stock, _, err := s.ingest(ctx, ticker)
	return stock, err
}

// IngestBatch ingests tickers in order. Cancelling ctx does not stop the batch;
// each fetch is bounded by the provider timeout instead.
func (s *ingestionService) IngestBatch(ctx context.Context, tickers []string) []models.IngestOutcome {
	ctx = context.WithoutCancel(ctx)
	outcomes := make([]models.IngestOutcome, 0, len(tickers))
	for _, ticker := range tickers {
		ticker = models.NormalizeTicker(ticker)
		stock, n, err := s.ingest(ctx, ticker)
		if err != nil {
			s.logger.Warn("ticker ingestion failed", zap.String("ticker", ticker), zap.Error(err))
			outcomes = append(outcomes, models.IngestOutcome{
				Ticker: ticker,
				Status: models.IngestFailed,
				Error:  err.Error(),
				Err:    err,
			})
			continue
		}
		outcomes = append(outcomes, models.IngestOutcome{
			Ticker:       stock.Ticker,
			Status:       models.IngestSucceeded,
			BarsUpserted: n,
			Stock:        stock,
		})
	}

	summary := models.SummarizeOutcomes(outcomes)
	s.logger.Info("batch ingestion finished",
		zap.Int("tickers", len(tickers)),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))
	return outcomes
}

func (s *ingestionService) IngestDefault(ctx context.Context) []models.IngestOutcome {
	return s.IngestBatch(ctx, DefaultTickers)
}

// ingest runs the fetch-and-upsert cycle for one ticker and returns how many bars were written.
func (s *ingestionService) ingest(ctx context.Context, ticker string) (*models.Stock, int, error) {
	ticker = models.NormalizeTicker(ticker)
	if err := models.ValidateTicker(ticker); err != nil {
		return nil, 0, err
	}

	stock, err := s.stocks.GetOrCreate(ctx, ticker)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to ensure stock %s: %w", ticker, err)
	}

	end := models.TruncateToDate(s.now())
	start := end.AddDate(0, 0, -s.lookbackDays)

	raw, err := s.provider.FetchDailyBars(ctx, ticker, start, end)
	if err != nil {
		return nil, 0, err
	}

	bars := make([]*models.PriceBar, 0, len(raw))
	for _, r := range raw {
		bars = append(bars, r.ToPriceBar(ticker))
	}

	n, err := s.prices.UpsertMany(ctx, bars)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to store prices for %s: %w", ticker, err)
	}

	s.logger.Debug("ticker ingested",
		zap.String("ticker", ticker),
		zap.Int("bars", n),
		zap.String("from", models.FormatDate(start)),
		zap.String("to", models.FormatDate(end)))
	return stock, n, nil
}
