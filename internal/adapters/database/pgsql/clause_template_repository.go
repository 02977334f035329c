package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxClauseTemplateRepository persists the boilerplate clause library.
type PgxClauseTemplateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxClauseTemplateRepository creates a new repository for clause
// templates.
func NewPgxClauseTemplateRepository(pool *pgxpool.Pool) portsrepo.ClauseTemplateRepositoryFacade {
	return &PgxClauseTemplateRepository{pool: pool}
}

const clauseTemplateColumns = `template_id, name, body, created_at, created_by, last_updated_at, last_updated_by`

func scanClauseTemplate(row pgx.Row) (*domain.ClauseTemplate, error) {
	var t domain.ClauseTemplate
	err := row.Scan(
		&t.TemplateID,
		&t.Name,
		&t.Body,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// SaveClauseTemplate persists a new template.
func (r *PgxClauseTemplateRepository) SaveClauseTemplate(ctx context.Context, template domain.ClauseTemplate) error {
	query := `
		INSERT INTO clause_templates (template_id, name, body, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		template.TemplateID,
		template.Name,
		template.Body,
		template.CreatedAt,
		template.CreatedBy,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save clause template %s: %w", template.Name, err)
	}
	return nil
}

// FindClauseTemplateByID retrieves a template by its ID.
func (r *PgxClauseTemplateRepository) FindClauseTemplateByID(ctx context.Context, templateID string) (*domain.ClauseTemplate, error) {
	query := `SELECT ` + clauseTemplateColumns + ` FROM clause_templates WHERE template_id = $1;`
	t, err := scanClauseTemplate(r.pool.QueryRow(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find clause template %s: %w", templateID, err)
	}
	return t, nil
}

// FindClauseTemplateByName retrieves a template by its unique name.
func (r *PgxClauseTemplateRepository) FindClauseTemplateByName(ctx context.Context, name string) (*domain.ClauseTemplate, error) {
	query := `SELECT ` + clauseTemplateColumns + ` FROM clause_templates WHERE name = $1;`
	t, err := scanClauseTemplate(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find clause template by name %s: %w", name, err)
	}
	return t, nil
}

// ListClauseTemplates retrieves all templates ordered by name.
func (r *PgxClauseTemplateRepository) ListClauseTemplates(ctx context.Context) ([]domain.ClauseTemplate, error) {
	query := `SELECT ` + clauseTemplateColumns + ` FROM clause_templates ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clause templates: %w", err)
	}
	defer rows.Close()

	templates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClauseTemplate, error) {
		t, err := scanClauseTemplate(row)
		if err != nil {
			return domain.ClauseTemplate{}, err
		}
		return *t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clause templates: %w", err)
	}
	return templates, nil
}

// UpdateClauseTemplate updates an existing template's name and body.
func (r *PgxClauseTemplateRepository) UpdateClauseTemplate(ctx context.Context, template domain.ClauseTemplate) error {
	query := `
		UPDATE clause_templates
		SET name = $2, body = $3, last_updated_at = $4, last_updated_by = $5
		WHERE template_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		template.TemplateID,
		template.Name,
		template.Body,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update clause template %s: %w", template.TemplateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClauseTemplate removes a template.
func (r *PgxClauseTemplateRepository) DeleteClauseTemplate(ctx context.Context, templateID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clause_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete clause template %s: %w", templateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
