package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// CreateBusinessRequest defines the data needed to register a business.
type CreateBusinessRequest struct {
	Name string `json:"name" binding:"required,notblank"`
	Type string `json:"type" binding:"required,notblank"` // e.g. "retail", "consulting"
}

// UpdateBusinessRequest defines the mutable fields of a business.
type UpdateBusinessRequest struct {
	Name string `json:"name" binding:"required,notblank"`
	Type string `json:"type" binding:"required,notblank"`
}

// BusinessResponse defines the data returned for a business.
// Mirrors domain.Business.
type BusinessResponse struct {
	BusinessID    uint64    `json:"businessID"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		Owner:         b.Owner,
		Name:          b.Name,
		Type:          b.Type,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// BusinessIDParams binds the :businessID path parameter.
type BusinessIDParams struct {
	BusinessID uint64 `uri:"businessID"`
}
