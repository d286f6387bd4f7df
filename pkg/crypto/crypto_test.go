package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	c := New("test-passphrase")

	sealed, err := c.Seal(`[{"key":"abc","campaignIds":["1","2"]}]`)
	require.NoError(t, err)
	assert.NotEmpty(t, sealed)
	assert.NotContains(t, sealed, "abc")

	opened, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `[{"key":"abc","campaignIds":["1","2"]}]`, opened)
}

func TestOpenLegacyPlaintext(t *testing.T) {
	c := New("test-passphrase")

	// Rows written before encryption hold the raw value; Open passes them
	// through untouched.
	opened, err := c.Open("plain-api-key")
	require.NoError(t, err)
	assert.Equal(t, "plain-api-key", opened)
}

func TestOpenWrongKeyFails(t *testing.T) {
	sealed, err := New("key-one").Seal("secret")
	require.NoError(t, err)

	_, err = New("key-two").Open(sealed)
	assert.Error(t, err)
}

func TestSealEmpty(t *testing.T) {
	c := New("test-passphrase")
	sealed, err := c.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)
}
