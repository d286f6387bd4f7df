package utils

import "time"

// ParseDate parses a YYYY-MM-DD query parameter. An empty string yields the
// zero time so callers can apply their own default.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SplitList tokenizes a campaign/key list on any mixture of commas,
// semicolons and whitespace.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, 4)
	start := -1
	for i, r := range s {
		if r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
