package repositories

import (
	"context"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// ClauseTemplateReader defines read operations for the boilerplate clause
// library.
type ClauseTemplateReader interface {
	// FindClauseTemplateByID retrieves a template by its ID.
	FindClauseTemplateByID(ctx context.Context, templateID string) (*domain.ClauseTemplate, error)

	// FindClauseTemplateByName retrieves a template by its unique name.
	FindClauseTemplateByName(ctx context.Context, name string) (*domain.ClauseTemplate, error)

	// ListClauseTemplates retrieves all templates ordered by name.
	ListClauseTemplates(ctx context.Context) ([]domain.ClauseTemplate, error)
}

// ClauseTemplateWriter defines write operations for the clause library.
type ClauseTemplateWriter interface {
	// SaveClauseTemplate persists a new template.
	SaveClauseTemplate(ctx context.Context, template domain.ClauseTemplate) error

	// UpdateClauseTemplate updates an existing template's body and name.
	UpdateClauseTemplate(ctx context.Context, template domain.ClauseTemplate) error

	// DeleteClauseTemplate removes a template.
	DeleteClauseTemplate(ctx context.Context, templateID string) error
}

// ClauseTemplateRepositoryFacade combines all clause-template repository
// interfaces for clients that need full access.
type ClauseTemplateRepositoryFacade interface {
	ClauseTemplateReader
	ClauseTemplateWriter
}
