package ingesting

import (
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/utils"
)

// ResolveCredentials expands a project's seller configuration into the
// concrete (campaign, key) pairs to query. Precedence: the stored key to
// campaign-list mapping, then the stored flat key and campaign lists, then
// the environment fallback. Returns a ConfigurationError when no campaign or
// no key can be resolved.
func ResolveCredentials(stored *domain.SellerConfig, seller config.Seller) ([]domain.CredentialPair, error) {
	baseURL := seller.BaseURL
	authMode := domain.AuthMode(seller.AuthMode)
	if stored != nil {
		if stored.BaseURL != "" {
			baseURL = stored.BaseURL
		}
		if stored.AuthMode != "" {
			authMode = stored.AuthMode
		}
	}

	makePair := func(campaignID, apiKey string) domain.CredentialPair {
		return domain.CredentialPair{
			CampaignID: campaignID,
			APIKey:     apiKey,
			BaseURL:    baseURL,
			AuthMode:   authMode,
		}
	}

	if stored != nil && len(stored.TokenMap) > 0 {
		fallbackCampaigns := tokenizeAll(stored.CampaignIDs)

		pairs := make([]domain.CredentialPair, 0)
		for _, entry := range stored.TokenMap {
			if entry.Key == "" {
				continue
			}
			campaigns := tokenizeAll(entry.CampaignIDs)
			if len(campaigns) == 0 {
				campaigns = fallbackCampaigns
			}
			for _, campaign := range campaigns {
				pairs = append(pairs, makePair(campaign, entry.Key))
			}
		}

		if len(pairs) == 0 {
			return nil, NewConfigurationError("campaign id missing")
		}
		return pairs, nil
	}

	var keys, campaigns []string
	if stored != nil && (len(stored.APIKeys) > 0 || len(stored.CampaignIDs) > 0) {
		keys = tokenizeAll(stored.APIKeys)
		campaigns = tokenizeAll(stored.CampaignIDs)
	} else {
		keys = utils.SplitList(seller.APIKeys)
		if len(keys) == 0 && seller.APIKey != "" {
			keys = []string{seller.APIKey}
		}
		campaigns = utils.SplitList(seller.CampaignIDs)
		if len(campaigns) == 0 && seller.CampaignID != "" {
			campaigns = utils.SplitList(seller.CampaignID)
		}
	}

	if len(campaigns) == 0 {
		return nil, NewConfigurationError("campaign id missing")
	}
	if len(keys) == 0 {
		return nil, NewConfigurationError("api key missing")
	}

	pairs := make([]domain.CredentialPair, 0, len(keys)*len(campaigns))
	for _, key := range keys {
		for _, campaign := range campaigns {
			pairs = append(pairs, makePair(campaign, key))
		}
	}
	return pairs, nil
}

// tokenizeAll re-tokenizes every element: stored lists sometimes hold a
// single "123, 456" style string instead of separate entries.
func tokenizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, utils.SplitList(v)...)
	}
	return out
}
