package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxContractDocumentRepository persists the two editable fields of a
// contract document, keyed by deal. RenderedBody is derived state and is
// never stored.
type PgxContractDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxContractDocumentRepository creates a new repository for contract
// document edits.
func NewPgxContractDocumentRepository(pool *pgxpool.Pool) portsrepo.ContractDocumentRepositoryFacade {
	return &PgxContractDocumentRepository{pool: pool}
}

// UpsertContractDocument inserts or updates the editable fields of the
// document attached to a deal.
func (r *PgxContractDocumentRepository) UpsertContractDocument(ctx context.Context, doc domain.ContractDocument) error {
	query := `
		INSERT INTO contract_documents (document_id, deal_id, clause_body, observations, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (deal_id) DO UPDATE SET
			clause_body = EXCLUDED.clause_body,
			observations = EXCLUDED.observations,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		doc.DocumentID,
		doc.DealID,
		doc.ClauseBody,
		doc.Observations,
		doc.CreatedAt,
		doc.CreatedBy,
		doc.LastUpdatedAt,
		doc.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert contract document for deal %s: %w", doc.DealID, err)
	}
	return nil
}

// FindContractDocumentByDealID retrieves the document attached to a deal.
func (r *PgxContractDocumentRepository) FindContractDocumentByDealID(ctx context.Context, dealID string) (*domain.ContractDocument, error) {
	query := `
		SELECT document_id, deal_id, clause_body, observations, created_at, created_by, last_updated_at, last_updated_by
		FROM contract_documents
		WHERE deal_id = $1;
	`
	var doc domain.ContractDocument
	err := r.pool.QueryRow(ctx, query, dealID).Scan(
		&doc.DocumentID,
		&doc.DealID,
		&doc.ClauseBody,
		&doc.Observations,
		&doc.CreatedAt,
		&doc.CreatedBy,
		&doc.LastUpdatedAt,
		&doc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract document for deal %s: %w", dealID, err)
	}
	return &doc, nil
}
