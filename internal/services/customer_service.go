package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/tropicaldog17/stockfolio/internal/errors"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type customerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repositories.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req == nil {
		return nil, &apperrors.ErrValidation{Field: "body", Message: "is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	portfolio := &models.Portfolio{Stocks: make([]models.PortfolioStock, 0, len(req.Stocks))}
	for _, h := range req.Stocks {
		portfolio.Stocks = append(portfolio.Stocks, models.PortfolioStock{StockTicker: h.Ticker, Quantity: h.Quantity})
	}
	customer := &models.Customer{Name: req.Name, Address: req.Address, Portfolio: portfolio}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return s.repo.GetByID(ctx, customer.ID)
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, skip, limit int) ([]*models.Customer, error) {
	if skip < 0 {
		return nil, &apperrors.ErrValidation{Field: "skip", Message: "must not be negative"}
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &apperrors.ErrValidation{Field: "body", Message: "is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &apperrors.ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}
	return nil
}
