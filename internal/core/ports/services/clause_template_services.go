package services

import (
	"context"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/dto"
)

// ClauseTemplateReaderSvc defines read operations for the clause library.
type ClauseTemplateReaderSvc interface {
	// GetClauseTemplateByID retrieves a specific template.
	GetClauseTemplateByID(ctx context.Context, templateID string) (*domain.ClauseTemplate, error)

	// ListClauseTemplates retrieves all templates.
	ListClauseTemplates(ctx context.Context) ([]domain.ClauseTemplate, error)
}

// ClauseTemplateWriterSvc defines write operations for the clause library.
type ClauseTemplateWriterSvc interface {
	// CreateClauseTemplate persists a new template.
	CreateClauseTemplate(ctx context.Context, req dto.CreateClauseTemplateRequest, creatorUserID string) (*domain.ClauseTemplate, error)

	// UpdateClauseTemplate updates an existing template.
	UpdateClauseTemplate(ctx context.Context, templateID string, req dto.UpdateClauseTemplateRequest, updaterUserID string) (*domain.ClauseTemplate, error)

	// DeleteClauseTemplate removes a template from the library.
	DeleteClauseTemplate(ctx context.Context, templateID string) error
}

// ClauseTemplateSvcFacade combines all clause-template service interfaces.
type ClauseTemplateSvcFacade interface {
	ClauseTemplateReaderSvc
	ClauseTemplateWriterSvc
}
