package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tropicaldog17/stockfolio/internal/db"
	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
)

type customerRepository struct {
	db *db.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(database *db.DB) CustomerRepository {
	return &customerRepository{db: database}
}

// Create inserts the customer, its portfolio and holdings. Placeholder stocks
// are created for tickers that are not tracked yet.
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Portfolio == nil {
		customer.Portfolio = &models.Portfolio{}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range customer.Portfolio.Stocks {
			if err := ensureStock(tx, s.StockTicker); err != nil {
				return err
			}
		}
		if err := tx.Create(customer).Error; err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		return nil
	})
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).Preload("Portfolio.Stocks").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.ErrNotFound{Resource: "customer", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context, offset, limit int) ([]*models.Customer, error) {
	list := []*models.Customer{}
	q := r.db.WithContext(ctx).Preload("Portfolio.Stocks").Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return list, nil
}

func (r *customerRepository) Update(ctx context.Context, id string, patch *models.UpdateCustomerRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		err := tx.Preload("Portfolio").First(&c, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.ErrNotFound{Resource: "customer", ID: id}
		}
		if err != nil {
			return fmt.Errorf("failed to load customer %s: %w", id, err)
		}

		fields := map[string]interface{}{}
		if patch.Name != nil {
			fields["name"] = *patch.Name
		}
		if patch.Address != nil {
			fields["address"] = *patch.Address
		}
		if len(fields) > 0 {
			if err := tx.Model(&models.Customer{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return fmt.Errorf("failed to update customer %s: %w", id, err)
			}
		}

		if patch.Stocks == nil {
			return nil
		}
		if c.Portfolio == nil {
			c.Portfolio = &models.Portfolio{CustomerID: c.ID}
			if err := tx.Create(c.Portfolio).Error; err != nil {
				return fmt.Errorf("failed to create portfolio: %w", err)
			}
		}
		if err := tx.Where("portfolio_id = ?", c.Portfolio.ID).Delete(&models.PortfolioStock{}).Error; err != nil {
			return fmt.Errorf("failed to clear holdings: %w", err)
		}
		for _, h := range *patch.Stocks {
			if err := ensureStock(tx, h.Ticker); err != nil {
				return err
			}
			holding := &models.PortfolioStock{PortfolioID: c.Portfolio.ID, StockTicker: h.Ticker, Quantity: h.Quantity}
			if err := tx.Create(holding).Error; err != nil {
				return fmt.Errorf("failed to add holding %s: %w", h.Ticker, err)
			}
		}
		return nil
	})
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var portfolioIDs []string
		if err := tx.Model(&models.Portfolio{}).Where("customer_id = ?", id).Pluck("id", &portfolioIDs).Error; err != nil {
			return fmt.Errorf("failed to load portfolio: %w", err)
		}
		if len(portfolioIDs) > 0 {
			if err := tx.Where("portfolio_id IN ?", portfolioIDs).Delete(&models.PortfolioStock{}).Error; err != nil {
				return fmt.Errorf("failed to delete holdings: %w", err)
			}
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Portfolio{}).Error; err != nil {
			return fmt.Errorf("failed to delete portfolio: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Customer{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete customer %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return &apperrors.ErrNotFound{Resource: "customer", ID: id}
		}
		return nil
	})
}
