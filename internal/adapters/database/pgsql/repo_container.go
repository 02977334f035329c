package pgsql

import (
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ExchangeRateRepo:     NewPgxExchangeRateRepository(pool),
		ClauseTemplateRepo:   NewPgxClauseTemplateRepository(pool),
		ContractDocumentRepo: NewPgxContractDocumentRepository(pool),
	}
}
