package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	portssvc "github.com/fbenitez/concesionaria_app/internal/core/ports/services"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/fbenitez/concesionaria_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clauseTemplateHandler handles HTTP requests for the boilerplate clause
// library.
type clauseTemplateHandler struct {
	templateService portssvc.ClauseTemplateSvcFacade
}

// newClauseTemplateHandler creates a new clauseTemplateHandler.
func newClauseTemplateHandler(ts portssvc.ClauseTemplateSvcFacade) *clauseTemplateHandler {
	return &clauseTemplateHandler{templateService: ts}
}

// registerClauseTemplateRoutes registers routes related to clause templates.
func registerClauseTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.ClauseTemplateSvcFacade) {
	h := newClauseTemplateHandler(templateService)

	templates := rg.Group("/clause-templates")
	{
		templates.POST("", h.createClauseTemplate)
		templates.GET("", h.listClauseTemplates)
		templates.GET("/:templateID", h.getClauseTemplate)
		templates.PUT("/:templateID", h.updateClauseTemplate)
		templates.DELETE("/:templateID", h.deleteClauseTemplate)
	}
}

// createClauseTemplate adds a boilerplate clause to the library.
func (h *clauseTemplateHandler) createClauseTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClauseTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClauseTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.templateService.CreateClauseTemplate(c.Request.Context(), req, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate clause template", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Clause template '%s' already exists", req.Name)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create clause template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create clause template"})
		}
		return
	}

	logger.Info("Clause template created", slog.String("template_id", created.TemplateID))
	c.JSON(http.StatusCreated, dto.ToClauseTemplateResponse(created))
}

// getClauseTemplate returns a clause template by ID.
func (h *clauseTemplateHandler) getClauseTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	template, err := h.templateService.GetClauseTemplateByID(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clause template not found"})
		} else {
			logger.Error("Failed to get clause template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve clause template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClauseTemplateResponse(template))
}

// listClauseTemplates returns every clause template in the library.
func (h *clauseTemplateHandler) listClauseTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.templateService.ListClauseTemplates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clause templates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clause templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClauseTemplateResponse(templates))
}

// updateClauseTemplate applies partial edits to a clause template.
func (h *clauseTemplateHandler) updateClauseTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	var req dto.UpdateClauseTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClauseTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.templateService.UpdateClauseTemplate(c.Request.Context(), templateID, req, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clause template not found"})
		} else {
			logger.Error("Failed to update clause template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update clause template"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClauseTemplateResponse(updated))
}

// deleteClauseTemplate removes a clause template from the library.
func (h *clauseTemplateHandler) deleteClauseTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	if err := h.templateService.DeleteClauseTemplate(c.Request.Context(), templateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clause template not found"})
		} else {
			logger.Error("Failed to delete clause template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete clause template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
