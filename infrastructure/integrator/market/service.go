package market

import (
	"context"
	"time"

	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/marketclient"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
)

// Integrator is the day-scoped seller API surface the usecases consume.
// Every call is bound to a concrete credential pair; the integrator only
// translates pairs into client request options.
type Integrator interface {
	OrderStatsForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawOrder, error)
	OrderListForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawOrder, error)
	BusinessOrdersForDay(ctx context.Context, day time.Time, businessID, apiKey, campaignID string, base domain.CredentialPair) ([]marketdomain.RawOrder, error)
	ReturnsForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawReturn, error)
	PayoutsForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawPayout, error)
	ReturnDetail(ctx context.Context, pair domain.CredentialPair, orderID, returnID string) (*marketdomain.RawReturn, error)
	OfferMappings(ctx context.Context, pair domain.CredentialPair, pageToken string) ([]marketdomain.OfferMappingEntry, string, error)
}

// Service implements Integrator on top of the HTTP client.
type Service struct {
	cfg    *config.Config
	Client marketclient.Client
}

func New(cfg *config.Config, client marketclient.Client) Integrator {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Service) options(pair domain.CredentialPair) marketclient.RequestOptions {
	return marketclient.RequestOptions{
		BaseURL:        pair.BaseURL,
		AuthMode:       pair.AuthMode,
		ReturnType:     s.cfg.Seller.ReturnType,
		ReturnStatuses: s.cfg.Seller.ReturnStatuses,
	}
}

func (s *Service) OrderStatsForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawOrder, error) {
	date := day.Format(time.DateOnly)
	return s.Client.FetchOrderStats(ctx, date, date, pair.CampaignID, pair.APIKey, s.options(pair))
}

func (s *Service) OrderListForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawOrder, error) {
	date := day.Format(time.DateOnly)
	return s.Client.FetchOrders(ctx, date, date, pair.CampaignID, pair.APIKey, s.options(pair))
}

func (s *Service) BusinessOrdersForDay(ctx context.Context, day time.Time, businessID, apiKey, campaignID string, base domain.CredentialPair) ([]marketdomain.RawOrder, error) {
	date := day.Format(time.DateOnly)
	opts := s.options(base)
	if campaignID != "" {
		opts.CampaignIDs = []string{campaignID}
	}
	return s.Client.FetchBusinessOrders(ctx, date, date, businessID, apiKey, opts)
}

func (s *Service) ReturnsForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawReturn, error) {
	date := day.Format(time.DateOnly)
	return s.Client.FetchReturns(ctx, date, date, pair.CampaignID, pair.APIKey, s.options(pair))
}

func (s *Service) PayoutsForDay(ctx context.Context, day time.Time, pair domain.CredentialPair) ([]marketdomain.RawPayout, error) {
	date := day.Format(time.DateOnly)
	return s.Client.FetchPayouts(ctx, date, date, pair.CampaignID, pair.APIKey, s.options(pair))
}

func (s *Service) ReturnDetail(ctx context.Context, pair domain.CredentialPair, orderID, returnID string) (*marketdomain.RawReturn, error) {
	return s.Client.FetchReturnDetail(ctx, pair.CampaignID, orderID, returnID, pair.APIKey, s.options(pair))
}

func (s *Service) OfferMappings(ctx context.Context, pair domain.CredentialPair, pageToken string) ([]marketdomain.OfferMappingEntry, string, error) {
	return s.Client.FetchOfferMappings(ctx, pair.CampaignID, pair.APIKey, pageToken, s.options(pair))
}
