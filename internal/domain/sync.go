package domain

import "time"

// SyncResult is the outcome of one day's ingestion run. Errors carries
// non-fatal per-endpoint failures keyed "<campaign>:<endpoint>"; a non-empty
// map with a populated result means the run degraded gracefully.
type SyncResult struct {
	ProjectID       int               `json:"project_id"`
	Date            time.Time         `json:"date"`
	Revenue         float64           `json:"revenue"`
	Orders          int               `json:"orders"`
	OrdersCreated   int               `json:"orders_created"`
	OrdersWarehouse int               `json:"orders_warehouse"`
	OrdersDelivered int               `json:"orders_delivered"`
	Fees            float64           `json:"fees"`
	Acquiring       float64           `json:"acquiring"`
	Logistics       float64           `json:"logistics"`
	Returns         float64           `json:"returns"`
	Errors          map[string]string `json:"errors,omitempty"`
}

// Project is a tenant of the ledger service.
type Project struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
