package ingesting

import (
	"context"
	"net/http"
	"testing"
	"time"

	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/marketclient"
	marketmocks "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/mocks"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository/mocks"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	service    *Service
	market     *marketmocks.MockIntegrator
	configRepo *mocks.MockSellerConfigRepository
	ledgerRepo *mocks.MockDailyLedgerRepository
	skuRepo    *mocks.MockSkuDailyRepository
}

func newSyncFixture(t *testing.T, cfg *config.Config) *syncFixture {
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		market:     marketmocks.NewMockIntegrator(ctrl),
		configRepo: mocks.NewMockSellerConfigRepository(ctrl),
		ledgerRepo: mocks.NewMockDailyLedgerRepository(ctrl),
		skuRepo:    mocks.NewMockSkuDailyRepository(ctrl),
	}
	f.service = NewService(cfg, f.market, f.configRepo, f.ledgerRepo, f.skuRepo)
	return f
}

func testConfig() *config.Config {
	return &config.Config{
		Seller: config.Seller{
			APIKey:     "test-key",
			CampaignID: "100",
		},
		Ingest: config.Ingest{
			SkipPayouts:        true,
			ReturnNullifyRatio: 0.9,
		},
	}
}

func moneyPtr(v float64) *ledger.Money {
	m := ledger.Money(v)
	return &m
}

func minorPtr(v float64) *ledger.MinorMoney {
	m := ledger.MinorMoney(v)
	return &m
}

func TestSyncDay_DeliveryCommissionLandsInLogistics(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "DELIVERED",
		Total:  ledger.Money(100000),
		Commissions: []marketdomain.RawCharge{
			{Type: "DELIVERY", Amount: moneyPtr(15000)},
		},
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(100000)},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil)

	var saved *domain.DailyLedger
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.DailyLedger) error {
			saved = entry
			return nil
		})

	var savedRows []*domain.SkuDaily
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, rows []*domain.SkuDaily) error {
			savedRows = rows
			return nil
		})

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.InDelta(t, 100000.0, result.Revenue, 1e-6)
	assert.InDelta(t, 15000.0, result.Logistics, 1e-6)
	assert.InDelta(t, 0.0, result.Fees, 1e-6)
	assert.InDelta(t, 0.0, result.Acquiring, 1e-6)
	assert.Equal(t, 1, result.Orders)
	assert.Equal(t, 1, result.OrdersCreated)
	assert.Equal(t, 1, result.OrdersDelivered)
	assert.Empty(t, result.Errors)

	require.NotNil(t, saved)
	assert.InDelta(t, 15000.0, saved.Logistics, 1e-6)

	require.Len(t, savedRows, 1)
	assert.Equal(t, "SKU-A", savedRows[0].SKU)
	assert.InDelta(t, 100000.0, savedRows[0].Revenue, 1e-6)
	assert.InDelta(t, 15000.0, savedRows[0].Logistics, 1e-6)
}

func TestSyncDay_MinorUnitRefundAmount(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "DELIVERED",
		Total:  ledger.Money(200),
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 2, Price: ledger.Money(100)},
		},
	}

	// The JSON carried refundAmount: 9500 minor units; the decoded value is
	// 95.00 major units, attributed by quantity.
	ret := marketdomain.RawReturn{
		ID:           "RET-1",
		OrderID:      "ORD-1",
		RefundAmount: minorPtr(95),
		Items: []marketdomain.RawReturnItem{
			{OfferID: "SKU-A", Count: 2},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawReturn{ret}, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	var savedRows []*domain.SkuDaily
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, rows []*domain.SkuDaily) error {
			savedRows = rows
			return nil
		})

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.InDelta(t, 95.0, result.Returns, 1e-6)
	require.Len(t, savedRows, 1)
	assert.InDelta(t, 95.0, savedRows[0].Returns, 1e-6)
}

func TestSyncDay_AllOrderFetchesForbidden(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	forbidden := &marketclient.APIError{
		StatusCode: http.StatusForbidden,
		Status:     "403 Forbidden",
		Body:       `{"error":"FORBIDDEN"}`,
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, forbidden)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil)

	// No SaveOrUpdate / ReplaceForDay expectations: a fatal auth failure must
	// not write anything.
	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsAuthenticationError(err))

	authErr := err.(*AuthenticationError)
	assert.Contains(t, authErr.Errors, "100:orders")
}

func TestSyncDay_PayoutTotalsRescaleAcquiring(t *testing.T) {
	cfg := testConfig()
	cfg.Ingest.SkipPayouts = false
	f := newSyncFixture(t, cfg)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	order := marketdomain.RawOrder{
		ID:           "ORD-1",
		Status:       "DELIVERED",
		Total:        ledger.Money(100000),
		AcquiringFee: ledger.Money(4000),
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(100000)},
		},
	}

	payout := marketdomain.RawPayout{
		ID: "PAY-1",
		Services: []marketdomain.RawCharge{
			{Type: "ACQUIRING", Amount: moneyPtr(5000)},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil)
	f.market.EXPECT().PayoutsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawPayout{payout}, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	var savedRows []*domain.SkuDaily
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, rows []*domain.SkuDaily) error {
			savedRows = rows
			return nil
		})

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.InDelta(t, 5000.0, result.Acquiring, 1e-6)
	require.Len(t, savedRows, 1)
	// Order-derived 4000 rescaled by 5000/4000 = 1.25.
	assert.InDelta(t, 5000.0, savedRows[0].Acquiring, 1e-6)
}

func TestSyncDay_PartialFetchFailureDegradesGracefully(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "PROCESSING",
		Total:  ledger.Money(500),
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(500)},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, &marketclient.APIError{StatusCode: http.StatusInternalServerError, Status: "500"})
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.InDelta(t, 500.0, result.Revenue, 1e-6)
	assert.Equal(t, 1, result.OrdersWarehouse)
	assert.Contains(t, result.Errors, "100:returns")
}

func TestSyncDay_ReturnNullifiesDeliveredOrder(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "DELIVERED",
		Total:  ledger.Money(100),
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(100)},
		},
	}

	// 95 of 100 refunded: above the 0.9 nullify ratio.
	ret := marketdomain.RawReturn{
		ID:      "RET-1",
		OrderID: "ORD-1",
		Amount:  moneyPtr(95),
		Items: []marketdomain.RawReturnItem{
			{OfferID: "SKU-A", Count: 1},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawReturn{ret}, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Orders)
	assert.Equal(t, 1, result.OrdersCreated)
	assert.Equal(t, 0, result.OrdersDelivered)
	assert.InDelta(t, 95.0, result.Returns, 1e-6)
}

func TestSyncDay_ReturnDetailLookupWhenAmountMissing(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	ret := marketdomain.RawReturn{
		ID:      "RET-1",
		OrderID: "ORD-1",
	}
	detail := marketdomain.RawReturn{
		ID:      "RET-1",
		OrderID: "ORD-1",
		Items: []marketdomain.RawReturnItem{
			{OfferID: "SKU-A", Count: 1, Amount: moneyPtr(40)},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{{ID: "ORD-1", Status: "DELIVERED", Total: ledger.Money(100)}}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawReturn{ret}, nil)
	f.market.EXPECT().ReturnDetail(gomock.Any(), gomock.Any(), "ORD-1", "RET-1").
		Return(&detail, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	var savedRows []*domain.SkuDaily
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, rows []*domain.SkuDaily) error {
			savedRows = rows
			return nil
		})

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.InDelta(t, 40.0, result.Returns, 1e-6)
	require.Len(t, savedRows, 1)
	assert.Equal(t, "SKU-A", savedRows[0].SKU)
	assert.InDelta(t, 40.0, savedRows[0].Returns, 1e-6)
}

func TestSyncDay_EmptyDayPlusForbiddenPairStillPersists(t *testing.T) {
	cfg := testConfig()
	cfg.Seller.CampaignID = "100,200"
	f := newSyncFixture(t, cfg)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	forbidden := &marketclient.APIError{
		StatusCode: http.StatusForbidden,
		Status:     "403 Forbidden",
		Body:       `{"error":"FORBIDDEN"}`,
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	// Campaign 100 has a legitimately empty day; only campaign 200 is broken.
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, pair domain.CredentialPair) ([]marketdomain.RawOrder, error) {
			if pair.CampaignID == "200" {
				return nil, forbidden
			}
			return []marketdomain.RawOrder{}, nil
		}).
		Times(2)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil).
		Times(2)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Orders)
	assert.Contains(t, result.Errors, "200:orders")
	assert.NotContains(t, result.Errors, "100:orders")
}

func TestSyncDay_CancelledOrderKeepsItsCharges(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	// A cancelled order leaves the lifecycle counts but the marketplace still
	// reports its money on the stats feed.
	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "CANCELLED",
		Total:  ledger.Money(500),
		Fee:    ledger.Money(50),
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(500)},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	var savedRows []*domain.SkuDaily
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, rows []*domain.SkuDaily) error {
			savedRows = rows
			return nil
		})

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Orders)
	assert.Equal(t, 0, result.OrdersCreated)
	assert.InDelta(t, 500.0, result.Revenue, 1e-6)
	assert.InDelta(t, 50.0, result.Fees, 1e-6)

	require.Len(t, savedRows, 1)
	assert.Equal(t, "SKU-A", savedRows[0].SKU)
	assert.InDelta(t, 500.0, savedRows[0].Revenue, 1e-6)
}

func TestSyncDay_ReturnNullifiesRegardlessOfStatusBucket(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	orders := []marketdomain.RawOrder{
		{
			ID:     "ORD-1",
			Status: "DELIVERED",
			Total:  ledger.Money(200),
			Items: []marketdomain.RawOrderItem{
				{OfferID: "SKU-A", Count: 1, Price: ledger.Money(200)},
			},
		},
		{
			ID:     "ORD-2",
			Status: "PROCESSING",
			Total:  ledger.Money(100),
			Items: []marketdomain.RawOrderItem{
				{OfferID: "SKU-B", Count: 1, Price: ledger.Money(100)},
			},
		},
	}

	// The refund lands on the in-transit order, yet it still burns one
	// delivered slot: the nullification matches returns against financial
	// orders, not against the status buckets.
	ret := marketdomain.RawReturn{
		ID:      "RET-1",
		OrderID: "ORD-2",
		Amount:  moneyPtr(95),
		Items: []marketdomain.RawReturnItem{
			{OfferID: "SKU-B", Count: 1},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return(orders, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawReturn{ret}, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Orders)
	assert.Equal(t, 1, result.OrdersWarehouse)
	assert.Equal(t, 0, result.OrdersDelivered)
	assert.InDelta(t, 95.0, result.Returns, 1e-6)
}

func TestSyncDay_BusinessOrdersAreFetchedPerCampaign(t *testing.T) {
	cfg := testConfig()
	cfg.Seller.CampaignID = "100,200"
	cfg.Seller.UseBusinessOrdersAPI = true
	cfg.Seller.BusinessID = "BIZ-1"
	f := newSyncFixture(t, cfg)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{}, nil).
		Times(2)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil).
		Times(2)

	// One snapshot call per campaign, each restricted to its own campaign so
	// foreign campaigns under the same business stay out of the counts.
	f.market.EXPECT().BusinessOrdersForDay(gomock.Any(), day, "BIZ-1", "test-key", "100", gomock.Any()).
		Return([]marketdomain.RawOrder{{ID: "ORD-1", Status: "DELIVERED"}}, nil)
	f.market.EXPECT().BusinessOrdersForDay(gomock.Any(), day, "BIZ-1", "test-key", "200", gomock.Any()).
		Return([]marketdomain.RawOrder{{ID: "ORD-2", Status: "PROCESSING"}}, nil)

	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Orders)
	assert.Equal(t, 1, result.OrdersDelivered)
	assert.Equal(t, 1, result.OrdersWarehouse)
	assert.Empty(t, result.Errors)
}

func TestSyncDay_UnavailablePayoutEndpointIsSilentlySkipped(t *testing.T) {
	cfg := testConfig()
	cfg.Ingest.SkipPayouts = false
	f := newSyncFixture(t, cfg)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{{ID: "ORD-1", Status: "DELIVERED", Total: ledger.Money(100)}}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil)
	f.market.EXPECT().PayoutsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, &marketclient.APIError{StatusCode: http.StatusNotFound, Status: "404 Not Found", Body: `{"error":"NOT_FOUND"}`})
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	// A seller without the payout endpoint is a configuration of the account,
	// not a fetch failure.
	assert.Empty(t, result.Errors)
}

func TestSyncDay_ZeroActualCommissionChargesNothing(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	// The payload carries actual: 0 alongside a projected amount; the
	// explicit zero wins and the line charges nothing.
	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "DELIVERED",
		Total:  ledger.Money(100),
		Commissions: []marketdomain.RawCharge{
			{Type: "FEE", Actual: moneyPtr(0), Amount: moneyPtr(5)},
		},
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(100)},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return(nil, nil)
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).Return(nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, result.Fees, 1e-6)
	assert.InDelta(t, 100.0, result.Revenue, 1e-6)
}

func TestSyncDay_RerunProducesIdenticalRows(t *testing.T) {
	f := newSyncFixture(t, testConfig())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	order := marketdomain.RawOrder{
		ID:     "ORD-1",
		Status: "DELIVERED",
		Total:  ledger.Money(300),
		Items: []marketdomain.RawOrderItem{
			{OfferID: "SKU-A", Count: 1, Price: ledger.Money(200)},
			{OfferID: "SKU-B", Count: 1, Price: ledger.Money(100)},
		},
	}
	ret := marketdomain.RawReturn{
		ID:      "RET-1",
		OrderID: "ORD-1",
		Amount:  moneyPtr(40),
		Items: []marketdomain.RawReturnItem{
			{OfferID: "SKU-B", Count: 1},
		},
	}

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil).Times(2)
	f.market.EXPECT().OrderStatsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawOrder{order}, nil).
		Times(2)
	f.market.EXPECT().ReturnsForDay(gomock.Any(), day, gomock.Any()).
		Return([]marketdomain.RawReturn{ret}, nil).
		Times(2)

	var savedEntries []*domain.DailyLedger
	f.ledgerRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.DailyLedger) error {
			savedEntries = append(savedEntries, entry)
			return nil
		}).
		Times(2)

	var savedRows [][]*domain.SkuDaily
	f.skuRepo.EXPECT().ReplaceForDay(gomock.Any(), 1, day, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, rows []*domain.SkuDaily) error {
			savedRows = append(savedRows, rows)
			return nil
		}).
		Times(2)

	for i := 0; i < 2; i++ {
		_, err := f.service.SyncDay(context.Background(), 1, day)
		require.NoError(t, err)
	}

	require.Len(t, savedEntries, 2)
	assert.Equal(t, savedEntries[0], savedEntries[1])

	// Every run hands over the complete row set for the day, never a delta on
	// top of the previous run.
	require.Len(t, savedRows, 2)
	require.Len(t, savedRows[0], 2)
	assert.Equal(t, savedRows[0], savedRows[1])
}

func TestSyncDay_MissingConfigurationIsFatal(t *testing.T) {
	cfg := &config.Config{Ingest: config.Ingest{SkipPayouts: true}}
	f := newSyncFixture(t, cfg)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	f.configRepo.EXPECT().GetByProject(gomock.Any(), 1).Return(nil, nil)

	result, err := f.service.SyncDay(context.Background(), 1, day)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsConfigurationError(err))
}
