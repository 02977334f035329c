package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/google/uuid"
)

// ClauseTemplateService provides business logic for the boilerplate clause
// library.
type ClauseTemplateService struct {
	templateRepo portsrepo.ClauseTemplateRepositoryFacade
}

// NewClauseTemplateService creates a new ClauseTemplateService.
func NewClauseTemplateService(templateRepo portsrepo.ClauseTemplateRepositoryFacade) *ClauseTemplateService {
	return &ClauseTemplateService{templateRepo: templateRepo}
}

// CreateClauseTemplate handles the creation of a new clause template.
func (s *ClauseTemplateService) CreateClauseTemplate(ctx context.Context, req dto.CreateClauseTemplateRequest, creatorUserID string) (*domain.ClauseTemplate, error) {
	// Names are unique; check up front so the caller gets a clean conflict.
	existing, err := s.templateRepo.FindClauseTemplateByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check clause template name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: clause template '%s' already exists", apperrors.ErrDuplicate, req.Name)
	}

	now := time.Now()
	template := domain.ClauseTemplate{
		TemplateID: uuid.NewString(),
		Name:       req.Name,
		Body:       req.Body,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.templateRepo.SaveClauseTemplate(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create clause template in service: %w", err)
	}
	return &template, nil
}

// GetClauseTemplateByID retrieves a specific clause template.
func (s *ClauseTemplateService) GetClauseTemplateByID(ctx context.Context, templateID string) (*domain.ClauseTemplate, error) {
	if templateID == "" {
		return nil, fmt.Errorf("%w: template ID is required", apperrors.ErrValidation)
	}
	template, err := s.templateRepo.FindClauseTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clause template in service: %w", err)
	}
	return template, nil
}

// ListClauseTemplates retrieves all clause templates.
func (s *ClauseTemplateService) ListClauseTemplates(ctx context.Context) ([]domain.ClauseTemplate, error) {
	templates, err := s.templateRepo.ListClauseTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clause templates in service: %w", err)
	}
	return templates, nil
}

// UpdateClauseTemplate updates an existing clause template. Empty request
// fields leave the stored value unchanged.
func (s *ClauseTemplateService) UpdateClauseTemplate(ctx context.Context, templateID string, req dto.UpdateClauseTemplateRequest, updaterUserID string) (*domain.ClauseTemplate, error) {
	template, err := s.templateRepo.FindClauseTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load clause template for update: %w", err)
	}

	if req.Name != "" {
		template.Name = req.Name
	}
	if req.Body != "" {
		template.Body = req.Body
	}
	template.LastUpdatedAt = time.Now()
	template.LastUpdatedBy = updaterUserID

	if err := s.templateRepo.UpdateClauseTemplate(ctx, *template); err != nil {
		return nil, fmt.Errorf("failed to update clause template in service: %w", err)
	}
	return template, nil
}

// DeleteClauseTemplate removes a clause template from the library.
func (s *ClauseTemplateService) DeleteClauseTemplate(ctx context.Context, templateID string) error {
	if templateID == "" {
		return fmt.Errorf("%w: template ID is required", apperrors.ErrValidation)
	}
	if err := s.templateRepo.DeleteClauseTemplate(ctx, templateID); err != nil {
		return fmt.Errorf("failed to delete clause template in service: %w", err)
	}
	return nil
}
