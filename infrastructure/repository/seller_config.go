package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/crypto"
)

const sellerConfigsTable = "seller_configs"

type SellerConfigRepository interface {
	GetByProject(ctx context.Context, projectID int) (*domain.SellerConfig, error)
	SaveOrUpdate(ctx context.Context, cfg *domain.SellerConfig) error
}

type sellerConfigRepository struct {
	conn   *postgres.Connection
	cipher *crypto.Cipher
}

func NewSellerConfigRepository(conn *postgres.Connection, cipher *crypto.Cipher) SellerConfigRepository {
	return &sellerConfigRepository{
		conn:   conn,
		cipher: cipher,
	}
}

func (r *sellerConfigRepository) GetByProject(ctx context.Context, projectID int) (*domain.SellerConfig, error) {
	query, args, err := squirrel.
		Select("id, project_id, api_keys, campaign_ids, token_map, base_url, auth_mode").
		From(sellerConfigsTable).
		Where(squirrel.Eq{"project_id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	cfg := &domain.SellerConfig{}
	var sealedKeys []string
	var tokenMapJSON sql.NullString
	var baseURL, authMode sql.NullString

	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&cfg.ID,
		&cfg.ProjectID,
		pq.Array(&sealedKeys),
		pq.Array(&cfg.CampaignIDs),
		&tokenMapJSON,
		&baseURL,
		&authMode,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning seller config: %w", err)
	}

	cfg.APIKeys = make([]string, 0, len(sealedKeys))
	for _, sealed := range sealedKeys {
		key, err := r.cipher.Open(sealed)
		if err != nil {
			return nil, fmt.Errorf("opening sealed api key: %w", err)
		}
		cfg.APIKeys = append(cfg.APIKeys, key)
	}

	if tokenMapJSON.Valid && tokenMapJSON.String != "" {
		raw, err := r.cipher.Open(tokenMapJSON.String)
		if err != nil {
			return nil, fmt.Errorf("opening sealed token map: %w", err)
		}
		entries, err := ParseTokenMap([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing token map: %w", err)
		}
		cfg.TokenMap = entries
	}

	cfg.BaseURL = baseURL.String
	cfg.AuthMode = domain.AuthMode(authMode.String)

	return cfg, nil
}

func (r *sellerConfigRepository) SaveOrUpdate(ctx context.Context, cfg *domain.SellerConfig) error {
	sealedKeys := make([]string, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		sealed, err := r.cipher.Seal(key)
		if err != nil {
			return fmt.Errorf("sealing api key: %w", err)
		}
		sealedKeys = append(sealedKeys, sealed)
	}

	var sealedTokenMap string
	if len(cfg.TokenMap) > 0 {
		raw, err := json.Marshal(cfg.TokenMap)
		if err != nil {
			return fmt.Errorf("serializing token map: %w", err)
		}
		sealedTokenMap, err = r.cipher.Seal(string(raw))
		if err != nil {
			return fmt.Errorf("sealing token map: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert(sellerConfigsTable).
		Columns("project_id", "api_keys", "campaign_ids", "token_map", "base_url", "auth_mode").
		Values(
			cfg.ProjectID,
			pq.Array(sealedKeys),
			pq.Array(cfg.CampaignIDs),
			sealedTokenMap,
			cfg.BaseURL,
			string(cfg.AuthMode),
		).
		Suffix(`
			ON CONFLICT (project_id) DO UPDATE SET
				api_keys = EXCLUDED.api_keys,
				campaign_ids = EXCLUDED.campaign_ids,
				token_map = EXCLUDED.token_map,
				base_url = EXCLUDED.base_url,
				auth_mode = EXCLUDED.auth_mode,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

// tokenMapEntry accepts the field spellings seen in stored configurations.
type tokenMapEntry struct {
	Key          string   `json:"key"`
	Token        string   `json:"token"`
	APIKey       string   `json:"apiKey"`
	CampaignIDs  []string `json:"campaignIds"`
	Campaigns    []string `json:"campaigns"`
	CampaignsAlt []string `json:"campaign_ids"`
}

func (e tokenMapEntry) toDomain() domain.TokenEntry {
	entry := domain.TokenEntry{Key: e.Key}
	if entry.Key == "" {
		entry.Key = e.Token
	}
	if entry.Key == "" {
		entry.Key = e.APIKey
	}

	entry.CampaignIDs = e.CampaignIDs
	if len(entry.CampaignIDs) == 0 {
		entry.CampaignIDs = e.Campaigns
	}
	if len(entry.CampaignIDs) == 0 {
		entry.CampaignIDs = e.CampaignsAlt
	}

	return entry
}

// ParseTokenMap decodes a stored token map. Three shapes are accepted: a
// plain list of key strings, a list of objects carrying a key and its
// campaigns, and an object wrapping either list under "tokens".
func ParseTokenMap(raw []byte) ([]domain.TokenEntry, error) {
	var wrapper struct {
		Tokens json.RawMessage `json:"tokens"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Tokens != nil {
		raw = wrapper.Tokens
	}

	var asStrings []string
	if err := json.Unmarshal(raw, &asStrings); err == nil {
		entries := make([]domain.TokenEntry, 0, len(asStrings))
		for _, key := range asStrings {
			if key == "" {
				continue
			}
			entries = append(entries, domain.TokenEntry{Key: key})
		}
		return entries, nil
	}

	var asObjects []tokenMapEntry
	if err := json.Unmarshal(raw, &asObjects); err != nil {
		return nil, err
	}

	entries := make([]domain.TokenEntry, 0, len(asObjects))
	for _, obj := range asObjects {
		entry := obj.toDomain()
		if entry.Key == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
