package cataloging

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/log"
)

// maxCatalogPages bounds the continuation-token loop against an upstream
// that keeps handing out tokens.
const maxCatalogPages = 200

type Cataloger interface {
	SyncCatalog(ctx context.Context, projectID int) (int, error)
}

// Service pulls the marketplace offer mappings into the product catalog.
type Service struct {
	cfg         *config.Config
	market      market.Integrator
	configRepo  repository.SellerConfigRepository
	productRepo repository.ProductRepository
}

func NewService(
	cfg *config.Config,
	integrator market.Integrator,
	configRepo repository.SellerConfigRepository,
	productRepo repository.ProductRepository,
) Cataloger {
	return &Service{
		cfg:         cfg,
		market:      integrator,
		configRepo:  configRepo,
		productRepo: productRepo,
	}
}

// SyncCatalog pages every credential pair's offer mappings and upserts the
// products it finds. Returns the number of distinct SKUs seen. The upsert
// never touches the user-maintained cost price.
func (s *Service) SyncCatalog(ctx context.Context, projectID int) (int, error) {
	logger := log.ForContext(ctx).WithField("project_id", projectID)

	stored, err := s.configRepo.GetByProject(ctx, projectID)
	if err != nil {
		return 0, errors.Wrap(err, "loading seller configuration")
	}

	pairs, err := ingesting.ResolveCredentials(stored, s.cfg.Seller)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	for _, pair := range pairs {
		pageToken := ""
		for page := 0; page < maxCatalogPages; page++ {
			if err := ctx.Err(); err != nil {
				return 0, err
			}

			entries, nextToken, err := s.market.OfferMappings(ctx, pair, pageToken)
			if err != nil {
				return 0, errors.Wrapf(err, "fetching offer mappings for campaign %s", pair.CampaignID)
			}

			for i := range entries {
				sku := entries[i].SKUID()
				if sku == "" || seen[sku] {
					continue
				}
				seen[sku] = true

				product := &domain.Product{
					ProjectID: projectID,
					SKU:       sku,
					Name:      entries[i].DisplayName(),
				}
				if err := s.productRepo.SaveOrUpdate(ctx, product); err != nil {
					return 0, errors.Wrapf(err, "saving product %s", sku)
				}
			}

			if nextToken == "" {
				break
			}
			pageToken = nextToken
		}
	}

	logger.WithField("skus", len(seen)).Info("catalog sync finished")
	return len(seen), nil
}
