package dto

import (
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// CreateClauseTemplateRequest defines the data needed to add a boilerplate
// clause to the library.
type CreateClauseTemplateRequest struct {
	Name   string `json:"name" binding:"required,max=120"`
	Body   string `json:"body" binding:"required"`
	UserID string `json:"userID" binding:"required"`
}

// UpdateClauseTemplateRequest updates an existing clause template. Empty
// fields are left unchanged.
type UpdateClauseTemplateRequest struct {
	Name   string `json:"name" binding:"omitempty,max=120"`
	Body   string `json:"body"`
	UserID string `json:"userID" binding:"required"`
}

// ClauseTemplateResponse defines the data returned for a clause template.
type ClauseTemplateResponse struct {
	TemplateID    string    `json:"templateID"`
	Name          string    `json:"name"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToClauseTemplateResponse converts a domain.ClauseTemplate to its response
// DTO.
func ToClauseTemplateResponse(t *domain.ClauseTemplate) ClauseTemplateResponse {
	return ClauseTemplateResponse{
		TemplateID:    t.TemplateID,
		Name:          t.Name,
		Body:          t.Body,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListClauseTemplateResponse converts a slice of templates to DTOs.
func ToListClauseTemplateResponse(templates []domain.ClauseTemplate) []ClauseTemplateResponse {
	res := make([]ClauseTemplateResponse, len(templates))
	for i := range templates {
		res[i] = ToClauseTemplateResponse(&templates[i])
	}
	return res
}
