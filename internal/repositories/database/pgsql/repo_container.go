package pgsql

import (
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres backed repository onto db.
// db is normally a *pgxpool.Pool.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: NewCurrencyRepository(db),
	}
}
