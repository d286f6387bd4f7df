package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository/mocks"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedgerRange_TruncatesDatesToDays(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLedgerRepo := mocks.NewMockDailyLedgerRepository(ctrl)
	mockSkuRepo := mocks.NewMockSkuDailyRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)

	service := NewService(mockLedgerRepo, mockSkuRepo, mockProductRepo)

	start := time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 2, 10, 0, 0, time.UTC)

	expected := []*domain.DailyLedger{{ProjectID: 1, Revenue: 100}}
	mockLedgerRepo.EXPECT().
		GetByDateRange(gomock.Any(), 1,
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)).
		Return(expected, nil)

	ledgers, err := service.LedgerRange(context.Background(), 1, start, end)
	require.NoError(t, err)
	assert.Equal(t, expected, ledgers)
}

func TestLedgerRange_RejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := NewService(
		mocks.NewMockDailyLedgerRepository(ctrl),
		mocks.NewMockSkuDailyRepository(ctrl),
		mocks.NewMockProductRepository(ctrl),
	)

	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := service.LedgerRange(context.Background(), 1, start, end)
	require.Error(t, err)
}

func TestSkuBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLedgerRepo := mocks.NewMockDailyLedgerRepository(ctrl)
	mockSkuRepo := mocks.NewMockSkuDailyRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)

	service := NewService(mockLedgerRepo, mockSkuRepo, mockProductRepo)

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	expected := []*domain.SkuDaily{{SKU: "SKU-A", Revenue: 50}}
	mockSkuRepo.EXPECT().GetByProjectAndDate(gomock.Any(), 1, day).Return(expected, nil)

	rows, err := service.SkuBreakdown(context.Background(), 1, day.Add(5*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}
