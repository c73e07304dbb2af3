package services

// ServiceContainer bundles all service facades for injection into the
// handler layer.
type ServiceContainer struct {
	Party       PartySvcFacade
	Invoice     InvoiceSvcFacade
	Transaction TransactionSvcFacade
	Activity    ActivitySvcFacade
	User        UserSvcFacade
	Reporting   ReportingSvcFacade
}
