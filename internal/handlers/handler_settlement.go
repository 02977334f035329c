package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/fbenitez/concesionaria_app/internal/core/ports/services"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/fbenitez/concesionaria_app/internal/middleware"
	"github.com/fbenitez/concesionaria_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// settlementHandler handles HTTP requests for settlement computation.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

// newSettlementHandler creates a new settlementHandler.
func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// registerSettlementRoutes registers routes related to settlements.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)

	settlements := rg.Group("/settlements")
	{
		settlements.POST("/compute", h.computeSettlement)
		settlements.POST("/reprice", h.repriceMoney)
	}
}

// computeSettlement normalises the deal's price and payment components to
// pesos and aggregates them into a balance.
func (h *settlementHandler) computeSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deal := mapping.ToDomainDeal(req)
	result := h.settlementService.ComputeSettlement(c.Request.Context(), deal)

	logger.Info("Settlement computed",
		slog.String("deal_id", deal.DealID),
		slog.String("framing", string(result.Framing)))
	c.JSON(http.StatusOK, dto.ToSettlementResponse(result))
}

// repriceMoney substitutes the historical rate effective at the given date
// into the money's snapshot. On lookup failure the previous snapshot is kept,
// so the response is always usable.
func (h *settlementHandler) repriceMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RepriceMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RepriceMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return
	}

	money := h.settlementService.RepriceMoney(c.Request.Context(), mapping.ToDomainMoney(req.Money), date)
	c.JSON(http.StatusOK, dto.ToMoneyResponse(money))
}
