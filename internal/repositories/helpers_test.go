package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tropicaldog17/stockfolio/internal/db"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
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

func bar(ticker, date, closePrice string) *models.PriceBar {
	return &models.PriceBar{
		Ticker: ticker,
		Date:   day(date),
		Close:  decimal.RequireFromString(closePrice),
	}
}
