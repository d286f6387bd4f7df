package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCharge(t *testing.T) {
	tests := []struct {
		label    string
		expected Bucket
	}{
		{"ACQUIRING", BucketAcquiring},
		{"payment_processing", BucketAcquiring},
		{"Money_Transfer", BucketAcquiring},
		{"BANK_PROCESSING", BucketAcquiring},
		{"EKVAYRING", BucketAcquiring},

		{"DELIVERY", BucketLogistics},
		{"delivery_to_customer", BucketLogistics},
		{"LOGISTICS", BucketLogistics},
		{"fulfillment", BucketLogistics},
		{"STORAGE_FEE", BucketLogistics}, // storage wins over fee: table order
		{"SORTING", BucketLogistics},
		{"RETURN_PROCESSING", BucketLogistics},
		{"MIDDLE_MILE", BucketLogistics},
		{"CROSSREGIONAL_DELIVERY", BucketLogistics},

		{"FEE", BucketFees},
		{"commission", BucketFees},
		{"MARKETPLACE", BucketFees},
		{"AGENCY", BucketFees},
		{"SERVICE", BucketFees},

		{"", BucketNone},
		{"   ", BucketNone},
		{"SOMETHING_ELSE", BucketNone},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyCharge(tt.label))
		})
	}
}

// Classification is deterministic: same label, same bucket, every time.
func TestClassifyChargeDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, BucketAcquiring, ClassifyCharge("PAYMENT_TRANSFER"))
	}
}

func TestChargeSplitAddOrderCharge(t *testing.T) {
	var s ChargeSplit

	s.AddOrderCharge("DELIVERY", 150)
	s.AddOrderCharge("ACQUIRING", -30) // negative adjustments count as cost
	s.AddOrderCharge("COMMISSION", 45)
	s.AddOrderCharge("TOTALLY_UNKNOWN", 10) // never drop a charge
	s.AddOrderCharge("STORAGE", 0)          // zero amounts are ignored

	assert.Equal(t, 150.0, s.Logistics)
	assert.Equal(t, 30.0, s.Acquiring)
	assert.Equal(t, 55.0, s.Fees)
	assert.Equal(t, 235.0, s.Total())
}

func TestChargeSplitAddPayoutCharge(t *testing.T) {
	var s ChargeSplit

	s.AddPayoutCharge("PAYMENT", 500)
	s.AddPayoutCharge("DELIVERY", 200)
	s.AddPayoutCharge("MARKETPLACE_FEE", 100)
	s.AddPayoutCharge("NET_PAYOUT_LINE", 99999) // not a cost, skipped

	assert.Equal(t, 500.0, s.Acquiring)
	assert.Equal(t, 200.0, s.Logistics)
	assert.Equal(t, 100.0, s.Fees)
}
