package services

import (
	"context"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// RenderContractInput is the immutable snapshot a contract is rendered from.
// ClauseBody and Observations are the two user-editable sections; everything
// else is recomputed from the deal on every render.
type RenderContractInput struct {
	Deal         domain.Deal
	Buyer        domain.Party
	Seller       domain.Party
	Vehicle      domain.Vehicle
	ClauseBody   string
	Observations string

	// ClauseTemplateName, when set, swaps the boilerplate section for the
	// named template from the clause library instead of ClauseBody.
	ClauseTemplateName string

	// Date is the document date; zero value means today.
	Date time.Time
}

// DocumentRenderSvc renders the legal document body for a deal.
type DocumentRenderSvc interface {
	// RenderContract assembles and renders the full contract body and the
	// settlement it embeds.
	RenderContract(ctx context.Context, input RenderContractInput) (*domain.ContractDocument, *domain.Settlement, error)
}

// DocumentStoreSvc persists and retrieves the two editable document fields.
type DocumentStoreSvc interface {
	// GetContractDocument retrieves the persisted edits for a deal.
	GetContractDocument(ctx context.Context, dealID string) (*domain.ContractDocument, error)

	// SaveContractDocumentEdits upserts the clause body and observations for
	// a deal.
	SaveContractDocumentEdits(ctx context.Context, dealID, clauseBody, observations, editorUserID string) (*domain.ContractDocument, error)
}

// DocumentSvcFacade combines all document service interfaces.
type DocumentSvcFacade interface {
	DocumentRenderSvc
	DocumentStoreSvc
}
