package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricePrecision is the number of fractional digits stored for prices.
const PricePrecision = 2

// PriceBar is one trading day of OHLCV data for a ticker.
// (Ticker, Date) is unique; Close is always set, the rest may be missing upstream.
type PriceBar struct {
	ID        string              `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	Ticker    string              `json:"ticker" gorm:"column:stock_ticker;type:varchar(10);not null;uniqueIndex:uq_stock_price_date,priority:1"`
	Date      time.Time           `json:"date" gorm:"column:date;type:date;not null;index;uniqueIndex:uq_stock_price_date,priority:2"`
	Open      decimal.NullDecimal `json:"open" gorm:"column:open_price;type:decimal(10,2)"`
	High      decimal.NullDecimal `json:"high" gorm:"column:high_price;type:decimal(10,2)"`
	Low       decimal.NullDecimal `json:"low" gorm:"column:low_price;type:decimal(10,2)"`
	Close     decimal.Decimal     `json:"close" gorm:"column:close_price;type:decimal(10,2);not null"`
	Volume    *int64              `json:"volume,omitempty" gorm:"column:volume;type:bigint"`
	CreatedAt time.Time           `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (PriceBar) TableName() string { return "stock_prices" }

func (b *PriceBar) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// PriceBarResponse is the external representation of a bar.
type PriceBarResponse struct {
	Ticker string   `json:"ticker"`
	Date   string   `json:"date"`
	Open   *float64 `json:"open_price"`
	High   *float64 `json:"high_price"`
	Low    *float64 `json:"low_price"`
	Close  float64  `json:"close_price"`
	Volume *int64   `json:"volume"`
}

func (b *PriceBar) ToResponse() PriceBarResponse {
	return PriceBarResponse{
		Ticker: b.Ticker,
		Date:   FormatDate(b.Date),
		Open:   nullFloat(b.Open),
		High:   nullFloat(b.High),
		Low:    nullFloat(b.Low),
		Close:  b.Close.InexactFloat64(),
		Volume: b.Volume,
	}
}

func nullFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

// RawBar is one aggregate as delivered by the market-data provider.
// Timestamp is the bar start in epoch milliseconds (UTC).
type RawBar struct {
	Timestamp int64
	Open      decimal.NullDecimal
	High      decimal.NullDecimal
	Low       decimal.NullDecimal
	Close     decimal.Decimal
	Volume    decimal.NullDecimal
}

// Date returns the UTC calendar date of the bar.
func (r RawBar) Date() time.Time {
	return TruncateToDate(time.UnixMilli(r.Timestamp))
}

// ToPriceBar converts a provider bar for ticker into the stored form,
// rounding prices to cents and volume to a whole number.
func (r RawBar) ToPriceBar(ticker string) *PriceBar {
	bar := &PriceBar{
		Ticker: ticker,
		Date:   r.Date(),
		Open:   roundNull(r.Open),
		High:   roundNull(r.High),
		Low:    roundNull(r.Low),
		Close:  r.Close.Round(PricePrecision),
	}
	if r.Volume.Valid {
		v := r.Volume.Decimal.Round(0).IntPart()
		if v < 0 {
			v = 0
		}
		bar.Volume = &v
	}
	return bar
}

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(PricePrecision))
}
