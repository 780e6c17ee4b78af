package handlers

import (
	"context"
	"time"

	"github.com/gorilla/mux"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/services"
)

type mockIngestion struct {
	tickerErr    error
	batchTickers []string
	defaultRuns  int
}

var _ services.IngestionService = (*mockIngestion)(nil)

func (m *mockIngestion) IngestTicker(_ context.Context, ticker string) (*models.Stock, error) {
	if m.tickerErr != nil {
		return nil, m.tickerErr
	}
	return models.NewPlaceholderStock(models.NormalizeTicker(ticker)), nil
}

func (m *mockIngestion) IngestBatch(_ context.Context, tickers []string) []models.IngestOutcome {
	m.batchTickers = tickers
	outcomes := make([]models.IngestOutcome, 0, len(tickers))
	for _, t := range tickers {
		if t == "BADTICKER" {
			outcomes = append(outcomes, models.IngestOutcome{Ticker: t, Status: models.IngestFailed, Error: "provider error"})
			continue
		}
		outcomes = append(outcomes, models.IngestOutcome{Ticker: t, Status: models.IngestSucceeded, BarsUpserted: 10})
	}
	return outcomes
}

func (m *mockIngestion) IngestDefault(ctx context.Context) []models.IngestOutcome {
	m.defaultRuns++
	return m.IngestBatch(ctx, []string{"AAPL", "BADTICKER"})
}

type mockStocks struct {
	stocks map[string]*models.Stock
	bars   []*models.PriceBar
	start  time.Time
	end    time.Time
}

var _ services.StockService = (*mockStocks)(nil)

func (m *mockStocks) GetStock(_ context.Context, ticker string) (*models.Stock, error) {
	if s, ok := m.stocks[ticker]; ok {
		return s, nil
	}
	return nil, &apperrors.ErrNotFound{Resource: "stock", ID: ticker}
}

func (m *mockStocks) GetPrices(_ context.Context, ticker string, start, end time.Time) ([]*models.PriceBar, error) {
	if start.After(end) {
		return nil, &apperrors.ErrValidation{Field: "start_date", Message: "must be before or equal to end_date"}
	}
	m.start, m.end = start, end
	return m.bars, nil
}

type mockPortfolio struct {
	resp *models.PortfolioReturnResponse
	err  error
}

var _ services.PortfolioService = (*mockPortfolio)(nil)

func (m *mockPortfolio) CalculatePortfolioReturn(_ context.Context, customerID string, start, end time.Time) (*models.PortfolioReturnResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if start.After(end) {
		return nil, &apperrors.ErrValidation{Field: "start_date", Message: "must be before or equal to end_date"}
	}
	return m.resp, nil
}

type mockCustomers struct {
	customers map[string]*models.Customer
	skip      int
	limit     int
}

var _ services.CustomerService = (*mockCustomers)(nil)

func (m *mockCustomers) CreateCustomer(_ context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := &models.Customer{ID: "c-new", Name: req.Name, Address: req.Address}
	m.customers[c.ID] = c
	return c, nil
}

func (m *mockCustomers) GetCustomer(_ context.Context, id string) (*models.Customer, error) {
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, &apperrors.ErrNotFound{Resource: "customer", ID: id}
}

func (m *mockCustomers) ListCustomers(_ context.Context, skip, limit int) ([]*models.Customer, error) {
	m.skip, m.limit = skip, limit
	out := []*models.Customer{}
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCustomers) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	c, err := m.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	return c, nil
}

func (m *mockCustomers) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := m.GetCustomer(ctx, id); err != nil {
		return err
	}
	delete(m.customers, id)
	return nil
}

type testDeps struct {
	ingestion *mockIngestion
	stocks    *mockStocks
	portfolio *mockPortfolio
	customers *mockCustomers
	health    HealthChecker
}

func newTestDeps() *testDeps {
	return &testDeps{
		ingestion: &mockIngestion{},
		stocks:    &mockStocks{stocks: map[string]*models.Stock{}},
		portfolio: &mockPortfolio{},
		customers: &mockCustomers{customers: map[string]*models.Customer{}},
	}
}

// router wires the mocks through RegisterRoutes; background jobs run inline.
func (d *testDeps) router() *mux.Router {
	stockHandler := NewStockHandler(d.ingestion, d.stocks, nil)
	stockHandler.background = func(job func()) { job() }

	r := mux.NewRouter()
	RegisterRoutes(r, &Handlers{
		Stocks:    stockHandler,
		Portfolio: NewPortfolioHandler(d.portfolio),
		Customers: NewCustomerHandler(d.customers),
		Health:    NewHealthHandler(d.health, "test"),
	})
	return r
}

type fakeHealth struct{ err error }

func (f fakeHealth) Health() error { return f.err }
