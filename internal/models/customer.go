package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
)

// Customer owns exactly one portfolio.
type Customer struct {
	ID        string     `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	Name      string     `json:"name" gorm:"column:name;type:varchar(255);not null;index"`
	Address   string     `json:"address" gorm:"column:address;type:varchar(500);not null"`
	Portfolio *Portfolio `json:"portfolio,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Positions returns the customer's holdings as valuation inputs.
func (c *Customer) Positions() []Position {
	if c.Portfolio == nil {
		return nil
	}
	positions := make([]Position, 0, len(c.Portfolio.Stocks))
	for _, s := range c.Portfolio.Stocks {
		positions = append(positions, Position{Ticker: s.StockTicker, Quantity: s.Quantity})
	}
	return positions
}

type Portfolio struct {
	ID         string           `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CustomerID string           `json:"customer_id" gorm:"column:customer_id;type:varchar(36);not null;uniqueIndex"`
	Stocks     []PortfolioStock `json:"stocks" gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time        `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Portfolio) TableName() string { return "portfolios" }

func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PortfolioStock is a holding of Quantity shares of StockTicker.
type PortfolioStock struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	PortfolioID string    `json:"portfolio_id" gorm:"column:portfolio_id;type:varchar(36);not null;uniqueIndex:uq_portfolio_stock,priority:1"`
	StockTicker string    `json:"stock_ticker" gorm:"column:stock_ticker;type:varchar(10);not null;uniqueIndex:uq_portfolio_stock,priority:2"`
	Quantity    int64     `json:"quantity" gorm:"column:quantity;not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (PortfolioStock) TableName() string { return "portfolio_stocks" }

func (s *PortfolioStock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// HoldingInput is a requested holding in create/update payloads.
type HoldingInput struct {
	Ticker   string `json:"ticker"`
	Quantity int64  `json:"quantity"`
}

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Stocks  []HoldingInput `json:"stocks,omitempty"`
}

// UpdateCustomerRequest only touches the fields that are set.
// Stocks, when present, replaces the whole holding list.
type UpdateCustomerRequest struct {
	Name    *string         `json:"name,omitempty"`
	Address *string         `json:"address,omitempty"`
	Stocks  *[]HoldingInput `json:"stocks,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	if err := validateName(r.Name); err != nil {
		return err
	}
	if err := validateAddress(r.Address); err != nil {
		return err
	}
	return validateHoldings(r.Stocks)
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.Name != nil {
		if err := validateName(*r.Name); err != nil {
			return err
		}
	}
	if r.Address != nil {
		if err := validateAddress(*r.Address); err != nil {
			return err
		}
	}
	if r.Stocks != nil {
		return validateHoldings(*r.Stocks)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return &apperrors.ErrValidation{Field: "name", Message: "is required"}
	}
	if len(name) > 255 {
		return &apperrors.ErrValidation{Field: "name", Message: "must be 255 characters or less"}
	}
	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return &apperrors.ErrValidation{Field: "address", Message: "is required"}
	}
	if len(address) > 500 {
		return &apperrors.ErrValidation{Field: "address", Message: "must be 500 characters or less"}
	}
	return nil
}

// validateHoldings normalizes tickers in place and rejects duplicates.
func validateHoldings(holdings []HoldingInput) error {
	seen := make(map[string]bool, len(holdings))
	for i := range holdings {
		holdings[i].Ticker = NormalizeTicker(holdings[i].Ticker)
		if err := ValidateTicker(holdings[i].Ticker); err != nil {
			return err
		}
		if holdings[i].Quantity <= 0 {
			return &apperrors.ErrValidation{Field: "quantity", Message: "must be positive"}
		}
		if seen[holdings[i].Ticker] {
			return &apperrors.ErrValidation{Field: "stocks", Message: "duplicate ticker " + holdings[i].Ticker}
		}
		seen[holdings[i].Ticker] = true
	}
	return nil
}
