package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{name: "plain number", payload: `1234.56`, expected: 1234.56},
		{name: "integer", payload: `15000`, expected: 15000},
		{name: "numeric string", payload: `"1234.56"`, expected: 1234.56},
		{name: "comma decimal string", payload: `"1234,56"`, expected: 1234.56},
		{name: "nested value", payload: `{"value": 1234.56}`, expected: 1234.56},
		{name: "nested amount", payload: `{"amount": 1234.56}`, expected: 1234.56},
		{name: "nested string value", payload: `{"value": "1234,56"}`, expected: 1234.56},
		{name: "doubly nested", payload: `{"amount": {"value": 99.9}}`, expected: 99.9},
		{name: "price fallback", payload: `{"price": 10}`, expected: 10},
		{name: "sum fallback", payload: `{"sum": 7.5}`, expected: 7.5},
		{name: "value wins over price", payload: `{"price": 10, "value": 20}`, expected: 20},
		{name: "null", payload: `null`, expected: 0},
		{name: "empty string", payload: `""`, expected: 0},
		{name: "garbage string", payload: `"abc"`, expected: 0},
		{name: "unknown object", payload: `{"foo": 1}`, expected: 0},
		{name: "array", payload: `[1,2]`, expected: 0},
		{name: "boolean", payload: `true`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tt.payload), &m)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, m.Float(), 1e-6)
		})
	}
}

// The same logical amount in every known shape normalizes to the same float.
func TestMoneyShapesAgree(t *testing.T) {
	shapes := []string{
		`95`,
		`"95"`,
		`"95,00"`,
		`{"value": 95}`,
		`{"amount": 95}`,
		`{"amount": {"value": "95.0"}}`,
	}

	for _, payload := range shapes {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(payload), &m))
		assert.InDelta(t, 95.0, m.Float(), 1e-6, "payload: %s", payload)
	}

	var minor MinorMoney
	require.NoError(t, json.Unmarshal([]byte(`9500`), &minor))
	assert.InDelta(t, 95.0, minor.Float(), 1e-6)
}

func TestMinorMoneyUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{name: "minor units", payload: `9500`, expected: 95.0},
		{name: "minor units string", payload: `"9500"`, expected: 95.0},
		{name: "null", payload: `null`, expected: 0},
		{name: "object rejected", payload: `{"value": 9500}`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MinorMoney
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &m))
			assert.InDelta(t, tt.expected, m.Float(), 1e-6)
		})
	}
}

func TestFirstMoney(t *testing.T) {
	assert.Equal(t, 10.0, FirstMoney(0, 0, 10, 20))
	assert.Equal(t, 5.0, FirstMoney(5, 10))
	assert.Equal(t, 0.0, FirstMoney(0, 0))
	assert.Equal(t, 0.0, FirstMoney())
}

func TestFirstPresent(t *testing.T) {
	m := func(v float64) *Money {
		mv := Money(v)
		return &mv
	}

	assert.Equal(t, 10.0, FirstPresent(nil, m(10), m(20)))
	assert.Equal(t, 0.0, FirstPresent(m(0), m(5)), "a present zero wins over later candidates")
	assert.Equal(t, 0.0, FirstPresent(nil, nil))
	assert.Equal(t, 0.0, FirstPresent())
}
