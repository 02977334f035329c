package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	portssvc "github.com/fbenitez/concesionaria_app/internal/core/ports/services"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/fbenitez/concesionaria_app/internal/middleware"
	"github.com/fbenitez/concesionaria_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for contract documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers routes related to contract documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("/render", h.renderContract)
		documents.GET("/:dealID", h.getDocument)
		documents.PUT("/:dealID", h.saveDocumentEdits)
	}
}

// renderContract assembles the contract body from the deal snapshot, party
// and vehicle data and the clause edits supplied in the request.
func (h *documentHandler) renderContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RenderContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenderContract", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	input := portssvc.RenderContractInput{
		Deal:               mapping.ToDomainDeal(req.Deal),
		Buyer:              mapping.ToDomainParty(req.Buyer),
		Seller:             mapping.ToDomainParty(req.Seller),
		Vehicle:            mapping.ToDomainVehicle(req.Vehicle),
		ClauseBody:         req.ClauseBody,
		Observations:       req.Observations,
		ClauseTemplateName: req.ClauseTemplateName,
		Date:               mapping.ToRenderDate(req.Date),
	}

	doc, result, err := h.documentService.RenderContract(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error rendering contract", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to render contract", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render contract"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RenderContractResponse{
		RenderedBody: doc.RenderedBody,
		Settlement:   dto.ToSettlementResponse(*result),
	})
}

// getDocument returns the persisted document edits for a deal.
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	doc, err := h.documentService.GetContractDocument(c.Request.Context(), dealID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Contract document not found", slog.String("deal_id", dealID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			logger.Error("Failed to get contract document", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve document"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToContractDocumentResponse(doc))
}

// saveDocumentEdits stores the boilerplate clause body and observations;
// everything else is recomputed on each render.
func (h *documentHandler) saveDocumentEdits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.SaveDocumentEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveDocumentEdits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.SaveContractDocumentEdits(c.Request.Context(), dealID, req.ClauseBody, req.Observations, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save document edits", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document edits"})
		}
		return
	}

	logger.Info("Document edits saved", slog.String("deal_id", dealID))
	c.JSON(http.StatusOK, dto.ToContractDocumentResponse(doc))
}
