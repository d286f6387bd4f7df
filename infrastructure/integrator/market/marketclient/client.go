package marketclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	marketdomain "github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/domain"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the low-level seller API client. One method per endpoint; all
// methods take the credential explicitly because a single run queries many
// (campaign, key) pairs.
type Client interface {
	FetchOrderStats(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawOrder, error)
	FetchOrders(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawOrder, error)
	FetchBusinessOrders(ctx context.Context, dateFrom, dateTo, businessID, apiKey string, opts RequestOptions) ([]marketdomain.RawOrder, error)
	FetchReturns(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawReturn, error)
	FetchPayouts(ctx context.Context, dateFrom, dateTo, campaignID, apiKey string, opts RequestOptions) ([]marketdomain.RawPayout, error)
	FetchReturnDetail(ctx context.Context, campaignID, orderID, returnID, apiKey string, opts RequestOptions) (*marketdomain.RawReturn, error)
	FetchOfferMappings(ctx context.Context, campaignID, apiKey, pageToken string, opts RequestOptions) ([]marketdomain.OfferMappingEntry, string, error)
}

// RequestOptions carries per-project request overrides and endpoint filters.
type RequestOptions struct {
	BaseURL        string
	AuthMode       domain.AuthMode
	ReturnType     string
	ReturnStatuses string
	CampaignIDs    []string // business orders only: restrict to these campaigns
}

// MarketClient implements Client against the HTTP API.
type MarketClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MarketClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// APIError is a non-2xx upstream response. The status code survives so the
// aggregator can tell an auth failure from an empty day.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 512 {
		body = body[:512]
	}
	return fmt.Sprintf("seller api error: %d %s %s URL: %s", e.StatusCode, e.Status, body, e.URL)
}

// IsAuthError reports whether the error is a credential problem (401/403).
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsUnavailable reports whether the endpoint is missing or forbidden for
// this credential; used to short-circuit payout fetching for the run.
func IsUnavailable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return true
		}
		body := strings.ToUpper(apiErr.Body)
		return strings.Contains(body, "NOT_FOUND") ||
			strings.Contains(body, "UNAUTHORIZED") ||
			strings.Contains(body, "FORBIDDEN")
	}
	return false
}

func (c *MarketClient) baseURL(opts RequestOptions) string {
	if opts.BaseURL != "" {
		return opts.BaseURL
	}
	return c.config.Seller.BaseURL
}

func (c *MarketClient) headers(apiKey string, opts RequestOptions) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	if apiKey == "" {
		return h
	}

	mode := opts.AuthMode
	if mode == "" {
		mode = domain.AuthMode(c.config.Seller.AuthMode)
	}
	switch strings.ToLower(string(mode)) {
	case "bearer", "oauth":
		h.Set("Authorization", "Bearer "+apiKey)
	default:
		h.Set("Api-Key", apiKey)
	}
	return h
}

// normalizePath applies the URL conventions the API inherited over time:
// unversioned paths get the /v2 prefix and every path carries a .json
// suffix before the query string.
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/v") {
		path = "/v2" + path
	}
	if !strings.Contains(path, ".json") {
		if i := strings.Index(path, "?"); i >= 0 {
			path = path[:i] + ".json" + path[i:]
		} else {
			path += ".json"
		}
	}
	return path
}

func (c *MarketClient) request(ctx context.Context, method, path, apiKey string, body interface{}, opts RequestOptions) ([]byte, error) {
	if apiKey == "" {
		return nil, errors.New("seller api key missing")
	}

	url := c.baseURL(opts) + normalizePath(path)

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header = c.headers(apiKey, opts)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "executing request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(data),
			URL:        url,
		}
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.WithField("url", url).Trace(utils.PrettyJson(data))
	}

	return data, nil
}

// unwrapResult strips the {"result": ...} envelope newer API generations
// wrap responses in; older ones return the payload bare.
func unwrapResult(data []byte) []byte {
	var envelope struct {
		Result jsoniter.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Result) > 0 {
		trimmed := bytes.TrimSpace(envelope.Result)
		if !bytes.Equal(trimmed, []byte("null")) {
			return envelope.Result
		}
	}
	return data
}
