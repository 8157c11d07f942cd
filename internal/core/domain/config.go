package domain

import "time"

// ConfigEntry is one row of the global name/value configuration table.
// Read-mostly; writes are admin-gated at the service layer.
type ConfigEntry struct {
	Name      string    `json:"name"` // unique
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
