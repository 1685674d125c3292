package services

// ServiceContainer holds instances of all the application services.
// It is assembled once at startup and handed to the HTTP layer, which only
// sees the facade interfaces.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Availability AvailabilitySvcFacade
	Validation   ValidationSvcFacade
	Alert        AlertSvcFacade
	Cashflow     CashflowSvcFacade
	BudgetReport BudgetReportSvcFacade
	Voucher      VoucherSvcFacade
}
