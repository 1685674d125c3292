package services

import (
	"context"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
)

// CashflowSvcFacade consolidates income and expense vouchers into a
// chronological movement ledger with running balance and monthly projections.
type CashflowSvcFacade interface {
	// GetCashflow consolidates the company's vouchers, all-time when from/to
	// are nil.
	GetCashflow(ctx context.Context, companyID string, from, to *time.Time) (*domain.CashflowReport, error)
}

// BudgetReportSvcFacade builds the budgeted-vs-actual report of a project for
// one calendar year.
type BudgetReportSvcFacade interface {
	// GetBudgetVsActualReport builds the report; a zero year defaults to the
	// current year.
	GetBudgetVsActualReport(ctx context.Context, companyID, projectID string, year int) (*domain.BudgetVsActualReport, error)
}
