package services

import (
	"time"

	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	portssvc "github.com/fbenitez/concesionaria_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ContainerConfig carries the policy values the services need from the
// application configuration.
type ContainerConfig struct {
	DefaultExchangeRate decimal.Decimal
	RateResolveTimeout  time.Duration
}

// NewContainer creates a service container with properly initialized
// dependencies.
func NewContainer(cfg ContainerConfig, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	rateService := NewExchangeRateService(repos.ExchangeRateRepo, cfg.DefaultExchangeRate, cfg.RateResolveTimeout)

	return &portssvc.ServiceContainer{
		ExchangeRate:   rateService,
		Settlement:     NewSettlementService(rateService),
		Document:       NewDocumentService(rateService, repos.ContractDocumentRepo, repos.ClauseTemplateRepo),
		ClauseTemplate: NewClauseTemplateService(repos.ClauseTemplateRepo),
	}
}

// Interface implementation checks.
var (
	_ portssvc.ExchangeRateSvcFacade   = (*ExchangeRateService)(nil)
	_ portssvc.SettlementSvcFacade     = (*SettlementService)(nil)
	_ portssvc.DocumentSvcFacade       = (*DocumentService)(nil)
	_ portssvc.ClauseTemplateSvcFacade = (*ClauseTemplateService)(nil)
)
