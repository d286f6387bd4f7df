package domain

import "time"

// SkuDaily is the per-SKU breakdown of a DailyLedger row. The full set for a
// (project, date) is deleted and re-inserted on every ingestion run; rows are
// never partially updated.
type SkuDaily struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Date      time.Time `json:"date"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	Revenue   float64   `json:"revenue"`
	Fees      float64   `json:"fees"`
	Acquiring float64   `json:"acquiring"`
	Logistics float64   `json:"logistics"`
	Returns   float64   `json:"returns"`
}
