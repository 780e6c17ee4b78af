package repositories

import (
	"context"
	"time"

	"github.com/tropicaldog17/stockfolio/internal/models"
)

// PriceBarRepository is the price store: one bar per (ticker, date).
type PriceBarRepository interface {
	// Upsert inserts the bar or overwrites every field of the existing bar
	// with the same ticker and date, in a single statement.
	Upsert(ctx context.Context, bar *models.PriceBar) error
	// UpsertMany upserts bars in one transaction and returns how many were written.
	UpsertMany(ctx context.Context, bars []*models.PriceBar) (int, error)
	// RangeQuery returns the stored bars of ticker with start <= date <= end,
	// oldest first. Unknown tickers and gaps both yield an empty slice.
	RangeQuery(ctx context.Context, ticker string, start, end time.Time) ([]*models.PriceBar, error)
}

// StockRepository manages ticker records.
type StockRepository interface {
	GetOrCreate(ctx context.Context, ticker string) (*models.Stock, error)
	GetByTicker(ctx context.Context, ticker string) (*models.Stock, error)
}

// CustomerRepository manages customers together with their portfolio.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context, offset, limit int) ([]*models.Customer, error)
	Update(ctx context.Context, id string, patch *models.UpdateCustomerRequest) error
	Delete(ctx context.Context, id string) error
}
