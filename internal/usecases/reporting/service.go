package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

type Reporter interface {
	LedgerRange(ctx context.Context, projectID int, startDate, endDate time.Time) ([]*domain.DailyLedger, error)
	SkuBreakdown(ctx context.Context, projectID int, date time.Time) ([]*domain.SkuDaily, error)
	Products(ctx context.Context, projectID int) ([]*domain.Product, error)
}

// Service serves the dashboard reads over the reconciled ledger data.
type Service struct {
	ledgerRepo  repository.DailyLedgerRepository
	skuRepo     repository.SkuDailyRepository
	productRepo repository.ProductRepository
}

func NewService(
	ledgerRepo repository.DailyLedgerRepository,
	skuRepo repository.SkuDailyRepository,
	productRepo repository.ProductRepository,
) Reporter {
	return &Service{
		ledgerRepo:  ledgerRepo,
		skuRepo:     skuRepo,
		productRepo: productRepo,
	}
}

func (s *Service) LedgerRange(ctx context.Context, projectID int, startDate, endDate time.Time) ([]*domain.DailyLedger, error) {
	if endDate.Before(startDate) {
		return nil, errors.New("end date before start date")
	}

	ledgers, err := s.ledgerRepo.GetByDateRange(ctx, projectID, domain.DayStart(startDate), domain.DayStart(endDate))
	if err != nil {
		return nil, errors.Wrap(err, "loading ledger range")
	}
	return ledgers, nil
}

func (s *Service) SkuBreakdown(ctx context.Context, projectID int, date time.Time) ([]*domain.SkuDaily, error) {
	rows, err := s.skuRepo.GetByProjectAndDate(ctx, projectID, domain.DayStart(date))
	if err != nil {
		return nil, errors.Wrap(err, "loading sku breakdown")
	}
	return rows, nil
}

func (s *Service) Products(ctx context.Context, projectID int) ([]*domain.Product, error) {
	products, err := s.productRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "loading products")
	}
	return products, nil
}
