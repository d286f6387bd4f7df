package ledger

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Money is a monetary amount decoded from the seller API. The API has gone
// through several generations and the same concept may arrive as a plain
// number, a numeric string (with comma or dot decimals), or a nested object
// such as {"value": ...} or {"amount": {"value": ...}}. Decoding never fails:
// anything unparseable becomes zero so a single malformed charge cannot break
// a whole day's ingestion.
type Money float64

// moneyObjectKeys is the resolution order for object-shaped amounts. Each key
// is tried in turn and its value decoded recursively.
var moneyObjectKeys = []string{"value", "amount", "refundAmount", "totalAmount", "price", "sum"}

func (m *Money) UnmarshalJSON(data []byte) error {
	*m = Money(decodeMoney(data, 0))
	return nil
}

// Float returns the amount as a plain float64.
func (m Money) Float() float64 {
	return float64(m)
}

const maxMoneyDepth = 8

func decodeMoney(data []byte, depth int) float64 {
	if depth > maxMoneyDepth {
		return 0
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		return parseMoneyString(s)
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return 0
		}
		for _, key := range moneyObjectKeys {
			if raw, ok := obj[key]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				return decodeMoney(raw, depth+1)
			}
		}
		return 0
	case '[':
		return 0
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return 0
		}
		return n
	}
}

// parseMoneyString parses a numeric string tolerating a comma decimal
// separator ("1234,56").
func parseMoneyString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.Replace(s, ",", ".", 1)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// MinorMoney is an amount expressed in minor currency units (kopecks/cents).
// Some return endpoints report refund amounts this way; decoding divides by
// 100. Only scalar values are accepted here: an object-shaped value is
// already in major units upstream and must go through Money instead.
type MinorMoney float64

func (m *MinorMoney) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*m = 0
			return nil
		}
		*m = MinorMoney(parseMoneyString(s) / 100)
	case '{', '[':
		*m = 0
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = MinorMoney(n / 100)
	}
	return nil
}

// Float returns the amount in major units.
func (m MinorMoney) Float() float64 {
	return float64(m)
}

// FirstMoney returns the first non-zero amount of an ordered candidate list.
func FirstMoney(candidates ...Money) float64 {
	for _, c := range candidates {
		if c != 0 {
			return float64(c)
		}
	}
	return 0
}

// FirstPresent returns the amount of the first candidate the payload carried
// at all, even when that amount is zero. Upstream charge lines distinguish
// "charged nothing" from "field absent".
func FirstPresent(candidates ...*Money) float64 {
	for _, c := range candidates {
		if c != nil {
			return float64(*c)
		}
	}
	return 0
}
