package marketclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
)

// FetchOfferMappings fetches one page of the campaign's catalog mapping.
// Returns the entries and the continuation token for the next page ("" when
// the listing is exhausted).
func (c *MarketClient) FetchOfferMappings(ctx context.Context, campaignID, apiKey, pageToken string, opts RequestOptions) ([]marketdomain.OfferMappingEntry, string, error) {
	if campaignID == "" {
		return nil, "", errors.New("campaign id missing")
	}

	params := url.Values{}
	params.Set("limit", "200")
	params.Set("mapping_kind", "ALL")
	if pageToken != "" {
		params.Set("page_token", pageToken)
	}

	path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries?%s", campaignID, params.Encode())
	data, err := c.request(ctx, http.MethodGet, path, apiKey, nil, opts)
	if err != nil {
		return nil, "", err
	}

	var page struct {
		OfferMappingEntries []marketdomain.OfferMappingEntry `json:"offerMappingEntries"`
		OfferMappings       []marketdomain.OfferMappingEntry `json:"offerMappings"`
		Paging              struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := json.Unmarshal(unwrapResult(data), &page); err != nil {
		return nil, "", errors.Wrap(err, "decoding offer mappings")
	}

	entries := page.OfferMappingEntries
	if len(entries) == 0 {
		entries = page.OfferMappings
	}

	next := page.Paging.NextPageToken
	if next == "" {
		next = page.NextPageToken
	}
	return entries, next, nil
}
