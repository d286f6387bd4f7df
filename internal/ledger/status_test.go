package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOrderStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		substatus string
		expected  StatusBucket
		cancelled bool
	}{
		{name: "cancelled", status: "CANCELLED", expected: StatusCancelled, cancelled: true},
		{name: "cancelled lowercase", status: "cancelled", expected: StatusCancelled, cancelled: true},
		{name: "unpaid cancelled substatus", status: "UNPAID", substatus: "UNPAID_CANCELLED", expected: StatusCancelled, cancelled: true},
		{name: "rejected", status: "PROCESSING", substatus: "REJECTED_BY_SHOP", expected: StatusCancelled, cancelled: true},

		{name: "delivered", status: "DELIVERED", expected: StatusDelivered},
		{name: "delivered in substatus", status: "FINISHED", substatus: "DELIVERED_TO_BUYER", expected: StatusDelivered},

		{name: "delivery in transit", status: "DELIVERY", expected: StatusWarehouse},
		{name: "pickup", status: "PICKUP", expected: StatusWarehouse},
		{name: "shipped", status: "SHIPPED", expected: StatusWarehouse},
		{name: "sorting center", status: "AT_SORTING_CENTER", expected: StatusWarehouse},
		{name: "packaging", status: "PROCESSING", substatus: "PACKAGING", expected: StatusWarehouse},
		{name: "ready to ship", status: "READY_TO_SHIP", expected: StatusWarehouse},
		{name: "processing", status: "PROCESSING", expected: StatusWarehouse},

		{name: "empty is new", status: "", substatus: "", expected: StatusNew},
		{name: "unknown is new", status: "PLACED", expected: StatusNew},

		// cancellation wins even when transit keywords are present
		{name: "cancel beats delivery", status: "DELIVERY", substatus: "CANCELLED_BY_USER", expected: StatusCancelled, cancelled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ClassifyOrderStatus(tt.status, tt.substatus)
			assert.Equal(t, tt.expected, state.Bucket)
			assert.Equal(t, tt.cancelled, state.Cancelled)
		})
	}
}

// Every non-cancelled order lands in exactly one of the created buckets, so
// created = new + warehouse + delivered holds for any batch.
func TestStatusBucketsPartition(t *testing.T) {
	statuses := [][2]string{
		{"DELIVERED", ""},
		{"DELIVERY", ""},
		{"PROCESSING", "PACKAGING"},
		{"PLACED", ""},
		{"CANCELLED", ""},
		{"PICKUP", ""},
		{"UNPAID", "UNPAID_CANCELLED"},
		{"", ""},
	}

	var total, created, cancelled, newOnes, warehouse, delivered int
	for _, st := range statuses {
		total++
		state := ClassifyOrderStatus(st[0], st[1])
		if state.Cancelled {
			cancelled++
			continue
		}
		created++
		switch state.Bucket {
		case StatusDelivered:
			delivered++
		case StatusWarehouse:
			warehouse++
		default:
			newOnes++
		}
	}

	assert.Equal(t, total-cancelled, created)
	assert.Equal(t, created, newOnes+warehouse+delivered)
	assert.LessOrEqual(t, delivered, created)
}
