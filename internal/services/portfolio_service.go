package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

type portfolioService struct {
	customers  repositories.CustomerRepository
	calculator ReturnCalculator
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(customers repositories.CustomerRepository, calculator ReturnCalculator) PortfolioService {
	return &portfolioService{customers: customers, calculator: calculator}
}

func (s *portfolioService) CalculatePortfolioReturn(ctx context.Context, customerID string, start, end time.Time) (*models.PortfolioReturnResponse, error) {
	if _, err := uuid.Parse(customerID); err != nil {
		return nil, &apperrors.ErrValidation{Field: "customer_id", Message: "must be a valid UUID"}
	}
	if start.After(end) {
		return nil, &apperrors.ErrValidation{Field: "start_date", Message: "must be before or equal to end_date"}
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Portfolio == nil {
		return nil, &apperrors.ErrNotFound{Resource: "portfolio", ID: customerID}
	}

	report, err := s.calculator.CalculateReturn(ctx, customer.Positions(), start, end)
	if err != nil {
		return nil, err
	}
	return report.ToResponse(customer.ID), nil
}
