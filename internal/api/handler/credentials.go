package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CredentialsRequest is the stored seller configuration payload. TokenMap is
// raw JSON because stored configurations exist in several historical shapes.
type CredentialsRequest struct {
	APIKeys     []string        `json:"api_keys"`
	CampaignIDs []string        `json:"campaign_ids"`
	TokenMap    json.RawMessage `json:"token_map,omitempty"`
	BaseURL     string          `json:"base_url,omitempty"`
	AuthMode    string          `json:"auth_mode,omitempty"`
}

// UpsertCredentials stores a project's seller API configuration; keys are
// sealed before they hit the database.
func UpsertCredentials(repo repository.SellerConfigRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := projectIDParam(w, r)
		if !ok {
			return
		}

		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		cfg := &domain.SellerConfig{
			ProjectID:   projectID,
			APIKeys:     req.APIKeys,
			CampaignIDs: req.CampaignIDs,
			BaseURL:     req.BaseURL,
			AuthMode:    domain.AuthMode(req.AuthMode),
		}

		if len(req.TokenMap) > 0 {
			entries, err := repository.ParseTokenMap(req.TokenMap)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "unrecognized token map shape", nil)
				return
			}
			cfg.TokenMap = entries
		}

		if len(cfg.APIKeys) == 0 && len(cfg.TokenMap) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "at least one api key is required", nil)
			return
		}

		if err := repo.SaveOrUpdate(r.Context(), cfg); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "saving credentials", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
