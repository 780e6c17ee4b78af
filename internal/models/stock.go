package models

import (
	"strings"
	"time"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
)

// MaxTickerLength bounds ticker symbols (column width of stocks.ticker).
const MaxTickerLength = 10

// Stock is the ticker record price bars hang off.
type Stock struct {
	Ticker    string    `json:"ticker" gorm:"primaryKey;column:ticker;type:varchar(10)"`
	Name      string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Exchange  *string   `json:"exchange,omitempty" gorm:"column:exchange;type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Stock) TableName() string { return "stocks" }

// NewPlaceholderStock returns the minimal record created on first ingestion:
// the name is the ticker until something better is known.
func NewPlaceholderStock(ticker string) *Stock {
	return &Stock{Ticker: ticker, Name: ticker}
}

// NormalizeTicker trims and upper-cases a symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidateTicker checks an already normalized symbol.
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return &apperrors.ErrValidation{Field: "ticker", Message: "is required"}
	}
	if len(ticker) > MaxTickerLength {
		return &apperrors.ErrValidation{Field: "ticker", Message: "must be 10 characters or less"}
	}
	return nil
}
