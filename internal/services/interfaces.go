package services

import (
	"context"
	"time"

	"github.com/tropicaldog17/stockfolio/internal/models"
)

// MarketDataProvider fetches daily OHLCV bars from an external source
type MarketDataProvider interface {
	FetchDailyBars(ctx context.Context, ticker string, start, end time.Time) ([]models.RawBar, error)
}

// IngestionService pulls bars from the provider into the price store
type IngestionService interface {
	// IngestTicker refreshes the recent lookback window of one ticker and
	// returns its stock record. Provider failures surface as *errors.ProviderError.
	IngestTicker(ctx context.Context, ticker string) (*models.Stock, error)
	// IngestBatch ingests tickers one after another. It never fails as a
	// whole and returns one outcome per input ticker, in input order.
	IngestBatch(ctx context.Context, tickers []string) []models.IngestOutcome
	// IngestDefault runs IngestBatch over DefaultTickers.
	IngestDefault(ctx context.Context) []models.IngestOutcome
}

// ReturnCalculator values positions against stored closes
type ReturnCalculator interface {
	CalculateReturn(ctx context.Context, positions []models.Position, start, end time.Time) (*models.ReturnReport, error)
}

// PortfolioService computes returns of a customer's portfolio
type PortfolioService interface {
	CalculatePortfolioReturn(ctx context.Context, customerID string, start, end time.Time) (*models.PortfolioReturnResponse, error)
}

// CustomerService defines the interface for customer operations
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	ListCustomers(ctx context.Context, skip, limit int) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// StockService exposes stored stocks and their prices
type StockService interface {
	GetStock(ctx context.Context, ticker string) (*models.Stock, error)
	GetPrices(ctx context.Context, ticker string, start, end time.Time) ([]*models.PriceBar, error)
}
