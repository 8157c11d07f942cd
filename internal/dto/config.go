package dto

import (
	"time"

	"github.com/mroncal/coffee_ledger_app/internal/core/domain"
)

// SetConfigRequest defines the payload for writing a configuration value.
type SetConfigRequest struct {
	Value string `json:"value" binding:"required,max=100"`
}

// ConfigResponse is the public shape of a configuration entry.
type ConfigResponse struct {
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToConfigResponse converts a domain.ConfigEntry to its response DTO.
func ToConfigResponse(e *domain.ConfigEntry) ConfigResponse {
	return ConfigResponse{
		Name:      e.Name,
		Value:     e.Value,
		UpdatedAt: e.UpdatedAt,
	}
}

// ListConfigsResponse wraps the configuration listing.
type ListConfigsResponse struct {
	Configs []ConfigResponse `json:"configs"`
}
