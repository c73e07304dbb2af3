package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:       newPgxPartyRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ActivityRepo:    newPgxActivityRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
