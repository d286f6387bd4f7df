package handler

import (
	"net/http"

	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/api/handler/router"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/authenticating"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/cataloging"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Ledger(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:id/ledger",
			Method:  http.MethodGet,
			Handler: GetLedgerRange(service),
		},
		{
			Path:    "/v1/projects/:id/ledger/skus",
			Method:  http.MethodGet,
			Handler: GetSkuBreakdown(service),
		},
		{
			Path:    "/v1/projects/:id/products",
			Method:  http.MethodGet,
			Handler: GetProducts(service),
		},
	}
}

func Sync(ingestService ingesting.Ingestor, catalogService cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:id/sync",
			Method:  http.MethodPost,
			Handler: TriggerSync(ingestService),
		},
		{
			Path:    "/v1/projects/:id/catalog/sync",
			Method:  http.MethodPost,
			Handler: TriggerCatalogSync(catalogService),
		},
	}
}

func Credentials(repo repository.SellerConfigRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:id/credentials",
			Method:  http.MethodPut,
			Handler: UpsertCredentials(repo),
		},
	}
}
