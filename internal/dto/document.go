package dto

import "github.com/fbenitez/concesionaria_app/internal/core/domain"

// RenderContractRequest carries everything a contract render needs: the deal
// snapshot, the parties and vehicle, and the two user-editable sections.
type RenderContractRequest struct {
	Deal    DealRequest    `json:"deal" binding:"required"`
	Buyer   PartyRequest   `json:"buyer"`
	Seller  PartyRequest   `json:"seller"`
	Vehicle VehicleRequest `json:"vehicle"`

	ClauseBody         string `json:"clauseBody"`
	Observations       string `json:"observations"`
	ClauseTemplateName string `json:"clauseTemplateName"`
	Date               string `json:"date" binding:"dateonly"` // YYYY-MM-DD, defaults to today
}

// RenderContractResponse returns the rendered body together with the
// settlement it embeds.
type RenderContractResponse struct {
	RenderedBody string             `json:"renderedBody"`
	Settlement   SettlementResponse `json:"settlement"`
}

// SaveDocumentEditsRequest persists the only two editable document fields.
type SaveDocumentEditsRequest struct {
	ClauseBody   string `json:"clauseBody"`
	Observations string `json:"observations"`
	UserID       string `json:"userID" binding:"required"`
}

// ContractDocumentResponse is the persisted document state for a deal.
type ContractDocumentResponse struct {
	DocumentID   string `json:"documentID"`
	DealID       string `json:"dealID"`
	ClauseBody   string `json:"clauseBody"`
	Observations string `json:"observations"`
}

// ToContractDocumentResponse converts a domain.ContractDocument to its
// response DTO.
func ToContractDocumentResponse(doc *domain.ContractDocument) ContractDocumentResponse {
	return ContractDocumentResponse{
		DocumentID:   doc.DocumentID,
		DealID:       doc.DealID,
		ClauseBody:   doc.ClauseBody,
		Observations: doc.Observations,
	}
}
