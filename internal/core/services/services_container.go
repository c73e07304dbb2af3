package services

import (
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	activitySvc := NewActivityService(repos.ActivityRepo)

	return &portssvc.ServiceContainer{
		Party:       NewPartyService(repos.PartyRepo, activitySvc),
		Invoice:     NewInvoiceService(repos.InvoiceRepo, repos.PartyRepo, activitySvc),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PartyRepo, repos.InvoiceRepo, activitySvc),
		Activity:    activitySvc,
		User:        NewUserService(repos.UserRepo, activitySvc),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
