package marketclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
)

// FetchPayouts fetches settlement records for a date range. Not every
// credential has access to this endpoint; callers treat 401/403/404 as
// "unavailable" rather than an error worth reporting.
func (c *MarketClient) FetchPayouts(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawPayout, error) {
	if campaignID == "" {
		return nil, errors.New("campaign id missing")
	}

	params := url.Values{}
	params.Set("fromDate", dateFrom)
	params.Set("toDate", dateTo)

	path := fmt.Sprintf("/campaigns/%s/payouts?%s", campaignID, params.Encode())
	data, err := c.request(ctx, http.MethodGet, path, apiKey, nil, opts)
	if err != nil {
		return nil, err
	}

	var page struct {
		Payouts []marketdomain.RawPayout `json:"payouts"`
	}
	if err := json.Unmarshal(unwrapResult(data), &page); err != nil {
		return nil, errors.Wrap(err, "decoding payouts")
	}
	return page.Payouts, nil
}
