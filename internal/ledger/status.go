package ledger

import "strings"

// StatusBucket is the coarse lifecycle bucket an order snapshot falls into.
// This is a stateless classification of the order's current status text,
// not a state machine: every ingestion run reclassifies from scratch.
type StatusBucket string

const (
	StatusNew       StatusBucket = "new"
	StatusWarehouse StatusBucket = "warehouse"
	StatusDelivered StatusBucket = "delivered"
	StatusCancelled StatusBucket = "cancelled"
)

// Status keyword tables, same data-driven contract as the charge tables.
// Cancellation always wins, then delivery, then anything that looks like
// the order is moving through the warehouse/delivery pipeline.
var (
	cancelledKeywords = []string{
		"CANCEL",
		"REJECT",
	}

	deliveredKeywords = []string{
		"DELIVERED",
	}

	warehouseKeywords = []string{
		"DELIVERY",
		"PICKUP",
		"SHIP",
		"SORT",
		"PACK",
		"READY",
		"PROCESS",
	}
)

// OrderState is the result of classifying one order snapshot.
type OrderState struct {
	Bucket    StatusBucket
	Cancelled bool
}

// ClassifyOrderStatus buckets an order by its status and substatus text.
// Both fields are considered together because some API generations put the
// meaningful signal in the substatus only.
func ClassifyOrderStatus(status, substatus string) OrderState {
	text := strings.TrimSpace(strings.ToUpper(status) + " " + strings.ToUpper(substatus))
	if text == "" {
		return OrderState{Bucket: StatusNew}
	}

	if matchesAny(text, cancelledKeywords) {
		return OrderState{Bucket: StatusCancelled, Cancelled: true}
	}
	if matchesAny(text, deliveredKeywords) {
		return OrderState{Bucket: StatusDelivered}
	}
	if matchesAny(text, warehouseKeywords) {
		return OrderState{Bucket: StatusWarehouse}
	}

	return OrderState{Bucket: StatusNew}
}
