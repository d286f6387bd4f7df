package domain

import "time"

// Product is a catalog entry synced from the marketplace offer mappings.
// CostPrice is maintained by the user, not by catalog sync.
type Product struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	CostPrice float64   `json:"cost_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
