package ingesting

import (
	"testing"

	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCredentials_TokenMap(t *testing.T) {
	stored := &domain.SellerConfig{
		ProjectID: 1,
		TokenMap: []domain.TokenEntry{
			{Key: "key-a", CampaignIDs: []string{"100", "200"}},
			{Key: "key-b", CampaignIDs: []string{"300"}},
		},
		BaseURL:  "https://example.test",
		AuthMode: domain.AuthModeBearer,
	}

	pairs, err := ResolveCredentials(stored, config.Seller{})
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, domain.CredentialPair{
		CampaignID: "100",
		APIKey:     "key-a",
		BaseURL:    "https://example.test",
		AuthMode:   domain.AuthModeBearer,
	}, pairs[0])
	assert.Equal(t, "200", pairs[1].CampaignID)
	assert.Equal(t, "key-b", pairs[2].APIKey)
	assert.Equal(t, "300", pairs[2].CampaignID)
}

func TestResolveCredentials_TokenMapEntryWithoutCampaignsUsesFlatList(t *testing.T) {
	stored := &domain.SellerConfig{
		TokenMap:    []domain.TokenEntry{{Key: "key-a"}},
		CampaignIDs: []string{"100, 200"},
	}

	pairs, err := ResolveCredentials(stored, config.Seller{})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "100", pairs[0].CampaignID)
	assert.Equal(t, "200", pairs[1].CampaignID)
}

func TestResolveCredentials_FlatCartesianProduct(t *testing.T) {
	stored := &domain.SellerConfig{
		APIKeys:     []string{"key-a", "key-b"},
		CampaignIDs: []string{"100", "200"},
	}

	pairs, err := ResolveCredentials(stored, config.Seller{})
	require.NoError(t, err)
	require.Len(t, pairs, 4)

	got := make(map[string]bool)
	for _, p := range pairs {
		got[p.APIKey+"/"+p.CampaignID] = true
	}
	assert.True(t, got["key-a/100"])
	assert.True(t, got["key-a/200"])
	assert.True(t, got["key-b/100"])
	assert.True(t, got["key-b/200"])
}

func TestResolveCredentials_EnvFallback(t *testing.T) {
	seller := config.Seller{
		APIKeys:     "key-a;key-b",
		CampaignIDs: "100, 200",
		BaseURL:     "https://api.test",
		AuthMode:    "api-key",
	}

	pairs, err := ResolveCredentials(nil, seller)
	require.NoError(t, err)
	assert.Len(t, pairs, 4)
	assert.Equal(t, "https://api.test", pairs[0].BaseURL)
	assert.Equal(t, domain.AuthModeAPIKey, pairs[0].AuthMode)
}

func TestResolveCredentials_SingleEnvKeyAndCampaign(t *testing.T) {
	seller := config.Seller{APIKey: "only-key", CampaignID: "42"}

	pairs, err := ResolveCredentials(nil, seller)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "only-key", pairs[0].APIKey)
	assert.Equal(t, "42", pairs[0].CampaignID)
}

func TestResolveCredentials_MissingCampaign(t *testing.T) {
	_, err := ResolveCredentials(nil, config.Seller{APIKey: "key-a"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "campaign id missing")
}

func TestResolveCredentials_MissingAPIKey(t *testing.T) {
	_, err := ResolveCredentials(nil, config.Seller{CampaignID: "100"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "api key missing")
}

func TestResolveCredentials_StoredBaseURLOverridesEnv(t *testing.T) {
	stored := &domain.SellerConfig{
		APIKeys:     []string{"key-a"},
		CampaignIDs: []string{"100"},
		BaseURL:     "https://stored.test",
	}
	seller := config.Seller{BaseURL: "https://env.test"}

	pairs, err := ResolveCredentials(stored, seller)
	require.NoError(t, err)
	assert.Equal(t, "https://stored.test", pairs[0].BaseURL)
}
