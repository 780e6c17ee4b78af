package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tropicaldog17/stockfolio/internal/db"
	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	name := "svc_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := db.ConnectSQLite(db.InMemorySQLitePath(name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(models.All()...))
	t.Cleanup(func() { database.Close() })
	return database
}

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedCloses stores one bar per date => close pair for ticker.
func seedCloses(t *testing.T, prices repositories.PriceBarRepository, ticker string, closes map[string]string) {
	t.Helper()
	bars := make([]*models.PriceBar, 0, len(closes))
	for date, c := range closes {
		bars = append(bars, &models.PriceBar{Ticker: ticker, Date: day(date), Close: dec(c)})
	}
	_, err := prices.UpsertMany(context.Background(), bars)
	require.NoError(t, err)
}

func rawBar(date, closePrice string) models.RawBar {
	return models.RawBar{
		Timestamp: day(date).Add(5 * time.Hour).UnixMilli(),
		Open:      decimal.NewNullDecimal(dec(closePrice)),
		Close:     dec(closePrice),
		Volume:    decimal.NewNullDecimal(dec("1000")),
	}
}

type fetchCall struct {
	Ticker string
	Start  time.Time
	End    time.Time
}

// mockProvider serves canned bars per ticker; tickers in failures return a ProviderError.
type mockProvider struct {
	mu       sync.Mutex
	bars     map[string][]models.RawBar
	failures map[string]apperrors.ProviderErrorKind
	calls    []fetchCall
}

var _ MarketDataProvider = (*mockProvider)(nil)

func (m *mockProvider) FetchDailyBars(ctx context.Context, ticker string, start, end time.Time) ([]models.RawBar, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fetchCall{Ticker: ticker, Start: start, End: end})
	m.mu.Unlock()
	if kind, ok := m.failures[ticker]; ok {
		return nil, &apperrors.ProviderError{Ticker: ticker, Kind: kind}
	}
	if bars, ok := m.bars[ticker]; ok {
		return bars, nil
	}
	return []models.RawBar{}, nil
}

// mockCustomerRepository keeps customers in a map keyed by ID.
type mockCustomerRepository struct {
	customers map[string]*models.Customer
	err       error
}

var _ repositories.CustomerRepository = (*mockCustomerRepository)(nil)

func (m *mockCustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	if m.err != nil {
		return m.err
	}
	m.customers[c.ID] = c
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, &apperrors.ErrNotFound{Resource: "customer", ID: id}
	}
	return c, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, offset, limit int) ([]*models.Customer, error) {
	return nil, m.err
}

func (m *mockCustomerRepository) Update(ctx context.Context, id string, patch *models.UpdateCustomerRequest) error {
	return m.err
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id string) error {
	return m.err
}

// mockCalculator records the positions it was asked to value.
type mockCalculator struct {
	positions []models.Position
	report    *models.ReturnReport
}

var _ ReturnCalculator = (*mockCalculator)(nil)

func (m *mockCalculator) CalculateReturn(ctx context.Context, positions []models.Position, start, end time.Time) (*models.ReturnReport, error) {
	m.positions = positions
	if m.report != nil {
		return m.report, nil
	}
	return &models.ReturnReport{Period: models.Period{StartDate: start, EndDate: end}, Holdings: []models.HoldingReturn{}}, nil
}
