package models

import (
	"github.com/shopspring/decimal"
)

// Position is a borrowed valuation input: Quantity shares of Ticker.
type Position struct {
	Ticker   string `json:"ticker"`
	Quantity int64  `json:"quantity"`
}

// HoldingReturn is the per-position line of a ReturnReport.
// StartPrice/EndPrice are the closes of the first and last bars found inside the period.
type HoldingReturn struct {
	Ticker           string          `json:"ticker"`
	Quantity         int64           `json:"quantity"`
	StartPrice       decimal.Decimal `json:"start_price"`
	EndPrice         decimal.Decimal `json:"end_price"`
	StartValue       decimal.Decimal `json:"start_value"`
	EndValue         decimal.Decimal `json:"end_value"`
	Return           decimal.Decimal `json:"return"`
	ReturnPercentage decimal.Decimal `json:"return_percentage"`
}

// ReturnReport aggregates the value change of a set of positions over Period.
// Positions without any bar in the period are left out of Holdings and totals.
type ReturnReport struct {
	Period           Period          `json:"period"`
	Holdings         []HoldingReturn `json:"holdings"`
	TotalStartValue  decimal.Decimal `json:"total_start_value"`
	TotalEndValue    decimal.Decimal `json:"total_end_value"`
	TotalReturn      decimal.Decimal `json:"total_return"`
	ReturnPercentage decimal.Decimal `json:"return_percentage"`
}

// HoldingReturnResponse is HoldingReturn with floats for presentation.
type HoldingReturnResponse struct {
	Ticker           string  `json:"ticker"`
	Quantity         int64   `json:"quantity"`
	StartPrice       float64 `json:"start_price"`
	EndPrice         float64 `json:"end_price"`
	StartValue       float64 `json:"start_value"`
	EndValue         float64 `json:"end_value"`
	Return           float64 `json:"return"`
	ReturnPercentage float64 `json:"return_percentage"`
}

// PortfolioReturnResponse is the API shape of a customer's portfolio return.
type PortfolioReturnResponse struct {
	CustomerID       string                  `json:"customer_id"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	TotalStartValue  float64                 `json:"total_start_value"`
	TotalEndValue    float64                 `json:"total_end_value"`
	TotalReturn      float64                 `json:"total_return"`
	ReturnPercentage float64                 `json:"return_percentage"`
	Holdings         []HoldingReturnResponse `json:"holdings"`
}

// ToResponse converts the report to floats. This is the only place decimals
// become floats.
func (r *ReturnReport) ToResponse(customerID string) *PortfolioReturnResponse {
	resp := &PortfolioReturnResponse{
		CustomerID:       customerID,
		StartDate:        FormatDate(r.Period.StartDate),
		EndDate:          FormatDate(r.Period.EndDate),
		TotalStartValue:  r.TotalStartValue.InexactFloat64(),
		TotalEndValue:    r.TotalEndValue.InexactFloat64(),
		TotalReturn:      r.TotalReturn.InexactFloat64(),
		ReturnPercentage: r.ReturnPercentage.InexactFloat64(),
		Holdings:         make([]HoldingReturnResponse, 0, len(r.Holdings)),
	}
	for _, h := range r.Holdings {
		resp.Holdings = append(resp.Holdings, HoldingReturnResponse{
			Ticker:           h.Ticker,
			Quantity:         h.Quantity,
			StartPrice:       h.StartPrice.InexactFloat64(),
			EndPrice:         h.EndPrice.InexactFloat64(),
			StartValue:       h.StartValue.InexactFloat64(),
			EndValue:         h.EndValue.InexactFloat64(),
			Return:           h.Return.InexactFloat64(),
			ReturnPercentage: h.ReturnPercentage.InexactFloat64(),
		})
	}
	return resp
}
