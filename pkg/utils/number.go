package utils

import "math"

// RoundWithTwoDecimalPlace rounds a monetary amount to two decimals for
// presentation and storage.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
