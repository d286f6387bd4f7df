package marketclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
)

type ordersPage struct {
	Orders []marketdomain.RawOrder `json:"orders"`
	Paging struct {
		NextPageToken string `json:"nextPageToken"`
	} `json:"paging"`
	NextPageToken string `json:"nextPageToken"`
}

func (p *ordersPage) nextToken() string {
	if p.Paging.NextPageToken != "" {
		return p.Paging.NextPageToken
	}
	return p.NextPageToken
}

// FetchOrderStats fetches the detailed order stats for a date range,
// following continuation tokens until the listing is exhausted. This is the
// endpoint that carries items and commission breakdowns.
func (c *MarketClient) FetchOrderStats(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawOrder, error) {
	if campaignID == "" {
		return nil, errors.New("campaign id missing")
	}

	var orders []marketdomain.RawOrder
	pageToken := ""

	for {
		path := fmt.Sprintf("/campaigns/%s/stats/orders", campaignID)
		if pageToken != "" {
			path += "?page_token=" + url.QueryEscape(pageToken)
		}

		body := map[string]string{"dateFrom": dateFrom, "dateTo": dateTo}
		data, err := c.request(ctx, http.MethodPost, path, apiKey, body, opts)
		if err != nil {
			return nil, err
		}

		var page ordersPage
		if err := json.Unmarshal(unwrapResult(data), &page); err != nil {
			return nil, errors.Wrap(err, "decoding order stats")
		}

		orders = append(orders, page.Orders...)
		pageToken = page.nextToken()
		if pageToken == "" {
			return orders, nil
		}
	}
}

// FetchOrders fetches the plain order listing; a lighter endpoint with more
// reliable status/substatus fields but no financial breakdown.
func (c *MarketClient) FetchOrders(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawOrder, error) {
	if campaignID == "" {
		return nil, errors.New("campaign id missing")
	}

	params := url.Values{}
	params.Set("fromDate", dateFrom)
	params.Set("toDate", dateTo)
	params.Set("limit", "50")

	path := fmt.Sprintf("/campaigns/%s/orders?%s", campaignID, params.Encode())
	data, err := c.request(ctx, http.MethodGet, path, apiKey, nil, opts)
	if err != nil {
		return nil, err
	}

	var page ordersPage
	if err := json.Unmarshal(unwrapResult(data), &page); err != nil {
		return nil, errors.Wrap(err, "decoding orders")
	}
	return page.Orders, nil
}

// FetchBusinessOrders fetches the business-level (cross-campaign) order
// status snapshot, optionally restricted to specific campaigns.
func (c *MarketClient) FetchBusinessOrders(ctx context.Context, dateFrom, dateTo, businessID, apiKey string, opts RequestOptions) ([]marketdomain.RawOrder, error) {
	if businessID == "" {
		return nil, errors.New("business id missing")
	}

	params := url.Values{}
	params.Set("fromDate", dateFrom)
	params.Set("toDate", dateTo)
	for _, campaignID := range opts.CampaignIDs {
		params.Add("campaignId", campaignID)
	}

	path := fmt.Sprintf("/businesses/%s/orders?%s", businessID, params.Encode())
	data, err := c.request(ctx, http.MethodGet, path, apiKey, nil, opts)
	if err != nil {
		return nil, err
	}

	var page ordersPage
	if err := json.Unmarshal(unwrapResult(data), &page); err != nil {
		return nil, errors.Wrap(err, "decoding business orders")
	}
	return page.Orders, nil
}
