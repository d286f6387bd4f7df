package ledger

import (
	"math"
	"strings"
)

// Bucket is the cost bucket a marketplace charge is attributed to.
type Bucket string

const (
	BucketNone      Bucket = ""
	BucketFees      Bucket = "fees"
	BucketLogistics Bucket = "logistics"
	BucketAcquiring Bucket = "acquiring"
)

// Charge keyword tables. These are data, not control flow: when the
// marketplace invents a new service-type label, extend the matching table
// instead of touching aggregation code. Matching is case-insensitive
// substring matching, checked in table order (acquiring first so that
// e.g. "PAYMENT_TRANSFER_SERVICE" lands in acquiring, not fees).
var (
	acquiringKeywords = []string{
		"ACQUIR",
		"PAYMENT",
		"TRANSFER",
		"BANK",
		"EKVAYR",
	}

	logisticsKeywords = []string{
		"DELIVERY",
		"LOGISTIC",
		"FULFILL",
		"STORAGE",
		"SORT",
		"RETURN",
		"MIDDLE_MILE",
		"CROSSREGIONAL",
	}

	feeKeywords = []string{
		"FEE",
		"COMMISSION",
		"MARKET",
		"AGENCY",
		"SERVICE",
	}
)

// ClassifyCharge maps a free-text charge/service-type label to a cost
// bucket. An empty label classifies as BucketNone; a non-empty label that
// matches no table also returns BucketNone and is up to the caller to
// default (order commissions default to fees so no charge is dropped).
func ClassifyCharge(label string) Bucket {
	t := strings.ToUpper(strings.TrimSpace(label))
	if t == "" {
		return BucketNone
	}

	if matchesAny(t, acquiringKeywords) {
		return BucketAcquiring
	}
	if matchesAny(t, logisticsKeywords) {
		return BucketLogistics
	}
	if matchesAny(t, feeKeywords) {
		return BucketFees
	}

	return BucketNone
}

func matchesAny(label string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// ChargeSplit accumulates classified charge amounts per bucket. Amounts are
// taken as absolute values: the API reports charges sometimes as negative
// adjustments, but a cost is a cost.
type ChargeSplit struct {
	Fees      float64
	Acquiring float64
	Logistics float64
}

// AddOrderCharge classifies and accumulates a single order-level charge.
// Unrecognized labels land in fees rather than being dropped.
func (s *ChargeSplit) AddOrderCharge(label string, amount float64) {
	if amount == 0 {
		return
	}
	switch ClassifyCharge(label) {
	case BucketAcquiring:
		s.Acquiring += math.Abs(amount)
	case BucketLogistics:
		s.Logistics += math.Abs(amount)
	default:
		s.Fees += math.Abs(amount)
	}
}

// AddPayoutCharge classifies and accumulates a single payout line. Unlike
// order commissions, unclassifiable payout lines are skipped: payouts mix
// in net-transfer lines that are not costs at all.
func (s *ChargeSplit) AddPayoutCharge(label string, amount float64) {
	if amount == 0 {
		return
	}
	switch ClassifyCharge(label) {
	case BucketAcquiring:
		s.Acquiring += math.Abs(amount)
	case BucketLogistics:
		s.Logistics += math.Abs(amount)
	case BucketFees:
		s.Fees += math.Abs(amount)
	}
}

// Total returns the sum of all buckets.
func (s ChargeSplit) Total() float64 {
	return s.Fees + s.Acquiring + s.Logistics
}
