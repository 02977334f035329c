package repositories

import (
	"context"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// ContractDocumentReader defines read operations for persisted document
// edits.
type ContractDocumentReader interface {
	// FindContractDocumentByDealID retrieves the document attached to a deal.
	FindContractDocumentByDealID(ctx context.Context, dealID string) (*domain.ContractDocument, error)
}

// ContractDocumentWriter defines write operations for persisted document
// edits. Only ClauseBody and Observations are ever stored; RenderedBody is
// derived state.
type ContractDocumentWriter interface {
	// UpsertContractDocument inserts or updates the editable fields of the
	// document attached to a deal.
	UpsertContractDocument(ctx context.Context, doc domain.ContractDocument) error
}

// ContractDocumentRepositoryFacade combines all contract-document repository
// interfaces.
type ContractDocumentRepositoryFacade interface {
	ContractDocumentReader
	ContractDocumentWriter
}
