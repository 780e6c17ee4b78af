package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

func newCalculatorFixture(t *testing.T) (ReturnCalculator, repositories.PriceBarRepository) {
	prices := repositories.NewPriceBarRepository(newTestDB(t))
	return NewReturnCalculator(prices, nil), prices
}

func TestCalculateReturn_SingleHolding(t *testing.T) {
	calc, prices := newCalculatorFixture(t)
	seedCloses(t, prices, "AAPL", map[string]string{
		"2024-01-01": "150.00",
		"2024-01-15": "158.20",
		"2024-01-31": "165.00",
	})

	report, err := calc.CalculateReturn(context.Background(),
		[]models.Position{{Ticker: "AAPL", Quantity: 10}}, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, report.Holdings, 1)

	h := report.Holdings[0]
	assert.True(t, h.StartPrice.Equal(dec("150")))
	assert.True(t, h.EndPrice.Equal(dec("165")))
	assert.True(t, h.StartValue.Equal(dec("1500")))
	assert.True(t, h.EndValue.Equal(dec("1650")))
	assert.True(t, h.Return.Equal(dec("150")))
	assert.True(t, h.ReturnPercentage.Equal(dec("10")))

	assert.True(t, report.TotalStartValue.Equal(dec("1500")))
	assert.True(t, report.TotalEndValue.Equal(dec("1650")))
	assert.True(t, report.TotalReturn.Equal(dec("150")))
	assert.True(t, report.ReturnPercentage.Equal(dec("10")))

	resp := report.ToResponse("c-1")
	assert.Equal(t, "2024-01-01", resp.StartDate)
	assert.Equal(t, "2024-01-31", resp.EndDate)
	assert.Equal(t, 150.0, resp.TotalReturn)
	assert.Equal(t, 10.0, resp.ReturnPercentage)
	assert.Equal(t, 1500.0, resp.Holdings[0].StartValue)
}

func TestCalculateReturn_BoundariesUseNearestTradingDays(t *testing.T) {
	calc, prices := newCalculatorFixture(t)
	seedCloses(t, prices, "MSFT", map[string]string{
		"2023-12-29": "90",
		"2024-01-02": "100",
		"2024-01-05": "110",
		"2024-01-08": "130",
	})

	// 2024-01-01 and 2024-01-07 have no bars
	report, err := calc.CalculateReturn(context.Background(),
		[]models.Position{{Ticker: "MSFT", Quantity: 2}}, day("2024-01-01"), day("2024-01-07"))
	require.NoError(t, err)
	require.Len(t, report.Holdings, 1)
	assert.True(t, report.Holdings[0].StartPrice.Equal(dec("100")))
	assert.True(t, report.Holdings[0].EndPrice.Equal(dec("110")))
	assert.True(t, report.Holdings[0].ReturnPercentage.Equal(dec("10")))
}

// A held ticker with no price history is silently left out of the report.
func TestCalculateReturn_SkipsPositionsWithoutData(t *testing.T) {
	calc, prices := newCalculatorFixture(t)
	seedCloses(t, prices, "AAPL", map[string]string{"2024-01-01": "100", "2024-01-31": "120"})
	seedCloses(t, prices, "OLD", map[string]string{"2023-06-01": "50"})

	positions := []models.Position{
		{Ticker: "AAPL", Quantity: 5},
		{Ticker: "NODATA", Quantity: 100},
		{Ticker: "OLD", Quantity: 7},
	}
	report, err := calc.CalculateReturn(context.Background(), positions, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, report.Holdings, 1)
	assert.Equal(t, "AAPL", report.Holdings[0].Ticker)
	assert.True(t, report.TotalStartValue.Equal(dec("500")))
	assert.True(t, report.TotalEndValue.Equal(dec("600")))
	assert.True(t, report.ReturnPercentage.Equal(dec("20")))
}

func TestCalculateReturn_ZeroStartPrice(t *testing.T) {
	calc, prices := newCalculatorFixture(t)
	seedCloses(t, prices, "ZERO", map[string]string{"2024-01-01": "0", "2024-01-31": "5"})

	report, err := calc.CalculateReturn(context.Background(),
		[]models.Position{{Ticker: "ZERO", Quantity: 10}}, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, report.Holdings, 1)
	assert.True(t, report.Holdings[0].ReturnPercentage.IsZero())
	assert.True(t, report.Holdings[0].Return.Equal(dec("50")))
	assert.True(t, report.ReturnPercentage.IsZero())
	assert.True(t, report.TotalReturn.Equal(dec("50")))
}

func TestCalculateReturn_SingleDayWindow(t *testing.T) {
	calc, prices := newCalculatorFixture(t)
	seedCloses(t, prices, "NVDA", map[string]string{"2024-01-09": "531.40", "2024-01-10": "543.50"})

	report, err := calc.CalculateReturn(context.Background(),
		[]models.Position{{Ticker: "NVDA", Quantity: 3}}, day("2024-01-10"), day("2024-01-10"))
	require.NoError(t, err)
	require.Len(t, report.Holdings, 1)
	h := report.Holdings[0]
	assert.True(t, h.StartPrice.Equal(dec("543.50")))
	assert.True(t, h.EndPrice.Equal(h.StartPrice))
	assert.True(t, h.Return.IsZero())
	assert.True(t, h.ReturnPercentage.IsZero())
}

func TestCalculateReturn_EmptyInputs(t *testing.T) {
	calc, _ := newCalculatorFixture(t)

	for _, positions := range [][]models.Position{nil, {{Ticker: "GHOST", Quantity: 1}}} {
		report, err := calc.CalculateReturn(context.Background(), positions, day("2024-01-01"), day("2024-01-31"))
		require.NoError(t, err)
		assert.NotNil(t, report.Holdings)
		assert.Empty(t, report.Holdings)
		assert.True(t, report.TotalReturn.IsZero())
		assert.True(t, report.ReturnPercentage.IsZero())
	}
}

func TestCalculateReturn_AggregateMatchesLineItems(t *testing.T) {
	calc, prices := newCalculatorFixture(t)
	seedCloses(t, prices, "AAA", map[string]string{"2024-02-01": "10.01", "2024-02-29": "10.37"})
	seedCloses(t, prices, "BBB", map[string]string{"2024-02-01": "0.33", "2024-02-29": "0.29"})
	seedCloses(t, prices, "CCC", map[string]string{"2024-02-05": "1234.56", "2024-02-20": "1299.99"})

	positions := []models.Position{
		{Ticker: "AAA", Quantity: 333},
		{Ticker: "BBB", Quantity: 12345},
		{Ticker: "CCC", Quantity: 7},
	}
	report, err := calc.CalculateReturn(context.Background(), positions, day("2024-02-01"), day("2024-02-29"))
	require.NoError(t, err)
	require.Len(t, report.Holdings, 3)

	sum := decimal.Zero
	for _, h := range report.Holdings {
		sum = sum.Add(h.Return)
	}
	assert.True(t, report.TotalReturn.Equal(sum), "total %s != sum %s", report.TotalReturn, sum)
	assert.True(t, report.TotalReturn.Equal(report.TotalEndValue.Sub(report.TotalStartValue)))
}
