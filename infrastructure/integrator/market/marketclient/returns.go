package marketclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
)

// FetchReturns fetches the returns created in a date range, optionally
// filtered by return type and statuses.
func (c *MarketClient) FetchReturns(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawReturn, error) {
	if campaignID == "" {
		return nil, errors.New("campaign id missing")
	}

	params := url.Values{}
	params.Set("fromDate", dateFrom)
	params.Set("toDate", dateTo)
	if opts.ReturnType != "" {
		params.Set("type", opts.ReturnType)
	}
	if opts.ReturnStatuses != "" {
		params.Set("statuses", opts.ReturnStatuses)
	}

	path := fmt.Sprintf("/campaigns/%s/returns?%s", campaignID, params.Encode())
	data, err := c.request(ctx, http.MethodGet, path, apiKey, nil, opts)
	if err != nil {
		return nil, err
	}

	var page struct {
		Returns []marketdomain.RawReturn `json:"returns"`
	}
	if err := json.Unmarshal(unwrapResult(data), &page); err != nil {
		return nil, errors.Wrap(err, "decoding returns")
	}
	return page.Returns, nil
}

// FetchReturnDetail fetches a single return with its item-level refund
// decisions. Slower than the listing; used only when the listing carried no
// usable amount.
func (c *MarketClient) FetchReturnDetail(ctx context.Context, campaignID, orderID, returnID, apiKey string, opts RequestOptions) (*marketdomain.RawReturn, error) {
	if campaignID == "" || orderID == "" || returnID == "" {
		return nil, errors.New("campaign, order and return ids are required")
	}

	path := fmt.Sprintf("/campaigns/%s/orders/%s/returns/%s", campaignID, orderID, returnID)
	data, err := c.request(ctx, http.MethodGet, path, apiKey, nil, opts)
	if err != nil {
		return nil, err
	}

	var detail marketdomain.RawReturn
	if err := json.Unmarshal(unwrapResult(data), &detail); err != nil {
		return nil, errors.Wrap(err, "decoding return detail")
	}
	return &detail, nil
}
