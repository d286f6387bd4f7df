package domain

import "time"

// DailyLedger is the reconciled financial record for one project and one
// UTC calendar day. There is exactly one row per (project, date); re-running
// ingestion for the same day replaces it.
type DailyLedger struct {
	ID              int       `json:"id"`
	ProjectID       int       `json:"project_id"`
	Date            time.Time `json:"date"`
	Revenue         float64   `json:"revenue"`
	Orders          int       `json:"orders"`
	OrdersCreated   int       `json:"orders_created"`
	OrdersWarehouse int       `json:"orders_warehouse"`
	OrdersDelivered int       `json:"orders_delivered"`
	Fees            float64   `json:"fees"`
	Acquiring       float64   `json:"acquiring"`
	Logistics       float64   `json:"logistics"`
	Returns         float64   `json:"returns"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DayStart truncates a timestamp to its UTC calendar day, the aggregation
// granularity for every ledger row.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
