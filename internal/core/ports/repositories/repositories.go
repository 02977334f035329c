package repositories

// RepositoryProvider aggregates the repositories the service container needs
// so wiring in main stays in one place.
type RepositoryProvider struct {
	ExchangeRateRepo     ExchangeRateReader
	ClauseTemplateRepo   ClauseTemplateRepositoryFacade
	ContractDocumentRepo ContractDocumentRepositoryFacade
}
