package services

import (
	"context"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
)

// SettlementSvcFacade exposes the settlement calculator. Every call site is
// a thin, stateless invocation over an immutable deal snapshot.
type SettlementSvcFacade interface {
	// ComputeSettlement normalises the deal's price and components to pesos
	// and aggregates them into a settlement. The fallback rate for
	// components missing a snapshot is resolved once at this call boundary.
	ComputeSettlement(ctx context.Context, deal domain.Deal) domain.Settlement

	// RepriceMoney substitutes the historical rate for the given date into
	// the money's snapshot. On lookup failure the previous snapshot is kept.
	RepriceMoney(ctx context.Context, m domain.Money, date time.Time) domain.Money
}
