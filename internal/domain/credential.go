package domain

// AuthMode selects how the seller API is authenticated.
type AuthMode string

const (
	AuthModeAPIKey AuthMode = "api-key"
	AuthModeBearer AuthMode = "bearer"
)

// CredentialPair is one concrete (campaign, key) combination to query during
// an ingestion run. Pairs are computed per run from the stored project
// configuration or the environment fallback and are never persisted.
type CredentialPair struct {
	CampaignID string
	APIKey     string
	BaseURL    string
	AuthMode   AuthMode
}

// TokenEntry maps one API key to the campaigns it is allowed to query. An
// entry with no campaigns falls back to the project's flat campaign list.
type TokenEntry struct {
	Key         string   `json:"key"`
	CampaignIDs []string `json:"campaignIds"`
}

// SellerConfig is the stored per-project seller API configuration. API keys
// are encrypted at rest; this struct carries the decrypted form for the
// duration of a run.
type SellerConfig struct {
	ID          int
	ProjectID   int
	APIKeys     []string
	CampaignIDs []string
	TokenMap    []TokenEntry
	BaseURL     string
	AuthMode    AuthMode
}
