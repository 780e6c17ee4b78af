package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

func TestCalculatePortfolioReturn_ResolvesHoldings(t *testing.T) {
	id := uuid.NewString()
	repo := &mockCustomerRepository{customers: map[string]*models.Customer{
		id: {
			ID:   id,
			Name: "Ada",
			Portfolio: &models.Portfolio{Stocks: []models.PortfolioStock{
				{StockTicker: "AAPL", Quantity: 10},
				{StockTicker: "MSFT", Quantity: 3},
			}},
		},
	}}
	calc := &mockCalculator{}
	svc := NewPortfolioService(repo, calc)

	resp, err := svc.CalculatePortfolioReturn(context.Background(), id, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, id, resp.CustomerID)
	assert.Equal(t, "2024-01-01", resp.StartDate)
	assert.Equal(t, "2024-01-31", resp.EndDate)
	assert.Equal(t, []models.Position{{Ticker: "AAPL", Quantity: 10}, {Ticker: "MSFT", Quantity: 3}}, calc.positions)
}

func TestCalculatePortfolioReturn_InvertedRange(t *testing.T) {
	svc := NewPortfolioService(&mockCustomerRepository{customers: map[string]*models.Customer{}}, &mockCalculator{})

	_, err := svc.CalculatePortfolioReturn(context.Background(), uuid.NewString(), day("2024-02-01"), day("2024-01-01"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestCalculatePortfolioReturn_BadCustomerID(t *testing.T) {
	svc := NewPortfolioService(&mockCustomerRepository{customers: map[string]*models.Customer{}}, &mockCalculator{})

	_, err := svc.CalculatePortfolioReturn(context.Background(), "not-a-uuid", day("2024-01-01"), day("2024-01-31"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestCalculatePortfolioReturn_UnknownCustomer(t *testing.T) {
	svc := NewPortfolioService(&mockCustomerRepository{customers: map[string]*models.Customer{}}, &mockCalculator{})

	_, err := svc.CalculatePortfolioReturn(context.Background(), uuid.NewString(), day("2024-01-01"), day("2024-01-31"))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCalculatePortfolioReturn_MissingPortfolio(t *testing.T) {
	id := uuid.NewString()
	repo := &mockCustomerRepository{customers: map[string]*models.Customer{id: {ID: id, Name: "Ada"}}}
	calc := &mockCalculator{}
	svc := NewPortfolioService(repo, calc)

	_, err := svc.CalculatePortfolioReturn(context.Background(), id, day("2024-01-01"), day("2024-01-31"))
	var nf *apperrors.ErrNotFound
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "portfolio", nf.Resource)
	assert.Nil(t, calc.positions)
}

func TestCalculatePortfolioReturn_RepositoryFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewPortfolioService(&mockCustomerRepository{err: boom}, &mockCalculator{})

	_, err := svc.CalculatePortfolioReturn(context.Background(), uuid.NewString(), day("2024-01-01"), day("2024-01-31"))
	assert.ErrorIs(t, err, boom)
}

// End to end through sqlite: customer holdings, stored closes, real calculator.
func TestCalculatePortfolioReturn_WithStoredPrices(t *testing.T) {
	database := newTestDB(t)
	prices := repositories.NewPriceBarRepository(database)
	customers := NewCustomerService(repositories.NewCustomerRepository(database))
	portfolio := NewPortfolioService(repositories.NewCustomerRepository(database), NewReturnCalculator(prices, nil))

	seedCloses(t, prices, "AAPL", map[string]string{"2024-01-01": "150.00", "2024-01-31": "165.00"})

	customer, err := customers.CreateCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:    "Grace",
		Address: "1 Harbor Rd",
		Stocks:  []models.HoldingInput{{Ticker: "aapl", Quantity: 10}, {Ticker: "TSLA", Quantity: 4}},
	})
	require.NoError(t, err)

	resp, err := portfolio.CalculatePortfolioReturn(context.Background(), customer.ID, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, resp.Holdings, 1)
	assert.Equal(t, "AAPL", resp.Holdings[0].Ticker)
	assert.Equal(t, 1500.0, resp.TotalStartValue)
	assert.Equal(t, 1650.0, resp.TotalEndValue)
	assert.Equal(t, 150.0, resp.TotalReturn)
	assert.Equal(t, 10.0, resp.ReturnPercentage)
}
