package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// budgetReportService aggregates the calendar-based monthly plan into the
// consolidated budgeted-vs-actual report of a project year.
type budgetReportService struct {
	BaseService
	planRepo portsrepo.MonthlyPlanReader
	now      func() time.Time
}

// NewBudgetReportService creates a new budget-vs-actual reporter.
func NewBudgetReportService(planRepo portsrepo.MonthlyPlanReader) portssvc.BudgetReportSvcFacade {
	return &budgetReportService{
		planRepo: planRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.BudgetReportSvcFacade = (*budgetReportService)(nil)

// GetBudgetVsActualReport implements portssvc.BudgetReportSvcFacade.
func (s *budgetReportService) GetBudgetVsActualReport(ctx context.Context, companyID, projectID string, year int) (*domain.BudgetVsActualReport, error) {
	if year == 0 {
		year = s.now().Year()
	}

	incomeSummary, err := s.directionSummary(ctx, companyID, projectID, year, domain.Income)
	if err != nil {
		return nil, err
	}
	expenseSummary, err := s.directionSummary(ctx, companyID, projectID, year, domain.Expense)
	if err != nil {
		return nil, err
	}

	report := &domain.BudgetVsActualReport{
		Year:           year,
		IncomeSummary:  incomeSummary,
		ExpenseSummary: expenseSummary,
		NetSummary:     netSummary(incomeSummary, expenseSummary),
	}

	for i := 0; i < domain.MonthsPerYear; i++ {
		income := incomeSummary.Monthly[i]
		expense := expenseSummary.Monthly[i]
		report.MonthlyProjection[i] = domain.MonthlyProjectionEntry{
			Month:             i + 1,
			IncomeBudgeted:    income.Budgeted,
			IncomeActual:      income.Actual,
			IncomeCompliance:  compliancePercent(income.Budgeted, income.Actual),
			ExpenseBudgeted:   expense.Budgeted,
			ExpenseActual:     expense.Actual,
			ExpenseCompliance: compliancePercent(expense.Budgeted, expense.Actual),
			NetBudgeted:       income.Budgeted.Sub(expense.Budgeted),
			NetActual:         income.Actual.Sub(expense.Actual),
		}
	}

	s.LogInfo(ctx, "Budget vs actual report generated",
		slog.String("project_id", projectID),
		slog.Int("year", year))
	return report, nil
}

// directionSummary sums the twelve monthly budgeted/actual values of every
// plan cell of one direction.
func (s *budgetReportService) directionSummary(ctx context.Context, companyID, projectID string, year int, direction domain.Direction) (domain.AnnualSummary, error) {
	cells, err := s.planRepo.GetMonthlyPlanCells(ctx, companyID, projectID, year, direction)
	if err != nil {
		s.LogError(ctx, err, "Failed to read monthly plan cells",
			slog.String("project_id", projectID),
			slog.Int("year", year),
			slog.String("direction", string(direction)))
		return domain.AnnualSummary{}, fmt.Errorf("failed to read %s plan for project %s year %d: %w", direction, projectID, year, err)
	}

	var summary domain.AnnualSummary
	for _, cell := range cells {
		for i := 0; i < domain.MonthsPerYear; i++ {
			summary.Monthly[i].Budgeted = summary.Monthly[i].Budgeted.Add(cell.Budgeted[i])
			summary.Monthly[i].Actual = summary.Monthly[i].Actual.Add(cell.Actual[i])
		}
	}
	for i := 0; i < domain.MonthsPerYear; i++ {
		summary.TotalBudgeted = summary.TotalBudgeted.Add(summary.Monthly[i].Budgeted)
		summary.TotalActual = summary.TotalActual.Add(summary.Monthly[i].Actual)
	}
	summary.Variance = summary.TotalActual.Sub(summary.TotalBudgeted)
	summary.VariancePercent = variancePercent(summary.TotalBudgeted, summary.Variance)
	return summary, nil
}

// netSummary subtracts the expense summary from the income one field by
// field. The variance percent is recomputed from the net totals using the
// absolute value of the budgeted total as divisor, so a negative net budget
// does not flip the sign of the percentage.
func netSummary(income, expense domain.AnnualSummary) domain.AnnualSummary {
	var net domain.AnnualSummary
	net.TotalBudgeted = income.TotalBudgeted.Sub(expense.TotalBudgeted)
	net.TotalActual = income.TotalActual.Sub(expense.TotalActual)
	net.Variance = net.TotalActual.Sub(net.TotalBudgeted)
	net.VariancePercent = variancePercent(net.TotalBudgeted.Abs(), net.Variance)
	for i := 0; i < domain.MonthsPerYear; i++ {
		net.Monthly[i].Budgeted = income.Monthly[i].Budgeted.Sub(expense.Monthly[i].Budgeted)
		net.Monthly[i].Actual = income.Monthly[i].Actual.Sub(expense.Monthly[i].Actual)
	}
	return net
}

// variancePercent returns variance/budgeted*100 rounded to two decimals, or
// zero when the budgeted amount is zero.
func variancePercent(budgeted, variance decimal.Decimal) decimal.Decimal {
	if budgeted.IsZero() {
		return decimal.Zero
	}
	return variance.Div(budgeted).Mul(oneHundred).Round(2)
}

// compliancePercent returns actual/budgeted*100 rounded to two decimals, or
// zero when the budgeted amount is zero.
func compliancePercent(budgeted, actual decimal.Decimal) decimal.Decimal {
	if budgeted.IsZero() {
		return decimal.Zero
	}
	return actual.Div(budgeted).Mul(oneHundred).Round(2)
}
