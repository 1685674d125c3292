package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type BudgetReportServiceTestSuite struct {
	suite.Suite
	mockPlan *MockMonthlyPlanReader
	service  portssvc.BudgetReportSvcFacade
}

func (suite *BudgetReportServiceTestSuite) SetupTest() {
	suite.mockPlan = new(MockMonthlyPlanReader)
	suite.service = services.NewBudgetReportService(suite.mockPlan)
}

// planCell builds a cell with the same budgeted/actual amount in every month.
func planCell(direction domain.Direction, code string, budgetedPerMonth, actualPerMonth string) domain.MonthlyPlanCell {
	cell := domain.MonthlyPlanCell{
		Year:        2024,
		CompanyID:   "c1",
		ProjectID:   "p1",
		Direction:   direction,
		PartidaCode: code,
	}
	for i := 0; i < domain.MonthsPerYear; i++ {
		cell.Budgeted[i] = mustDecimal(budgetedPerMonth)
		cell.Actual[i] = mustDecimal(actualPerMonth)
	}
	return cell
}

func (suite *BudgetReportServiceTestSuite) TestReport_VarianceAndCompliance() {
	ctx := context.Background()
	// Expense: 10000 budgeted vs 12000 actual over the year.
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", 2024, domain.Income).
		Return([]domain.MonthlyPlanCell{}, nil).Once()
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", 2024, domain.Expense).
		Return([]domain.MonthlyPlanCell{planCell(domain.Expense, "03", "833.33", "1000")}, nil).Once()

	report, err := suite.service.GetBudgetVsActualReport(ctx, "c1", "p1", 2024)

	suite.Require().NoError(err)
	suite.Equal(2024, report.Year)
	suite.True(report.ExpenseSummary.TotalBudgeted.Equal(mustDecimal("9999.96")))
	suite.True(report.ExpenseSummary.TotalActual.Equal(mustDecimal("12000")))
	suite.True(report.ExpenseSummary.Variance.Equal(mustDecimal("2000.04")))
	suite.True(report.ExpenseSummary.VariancePercent.Equal(mustDecimal("20.00")), "got %s", report.ExpenseSummary.VariancePercent)

	// Per-month compliance is actual/budgeted.
	january := report.MonthlyProjection[0]
	suite.Equal(1, january.Month)
	suite.True(january.ExpenseCompliance.Equal(mustDecimal("120.00")))
	suite.True(january.IncomeCompliance.IsZero())
	suite.True(january.NetActual.Equal(mustDecimal("-1000")))
}

func (suite *BudgetReportServiceTestSuite) TestReport_ZeroBudgetMeansZeroPercent() {
	ctx := context.Background()
	// Income was never planned but 500 arrived anyway.
	incomeCell := domain.MonthlyPlanCell{Year: 2024, CompanyID: "c1", ProjectID: "p1", Direction: domain.Income, PartidaCode: "01"}
	incomeCell.Actual[3] = mustDecimal("500")

	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", 2024, domain.Income).
		Return([]domain.MonthlyPlanCell{incomeCell}, nil).Once()
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", 2024, domain.Expense).
		Return([]domain.MonthlyPlanCell{}, nil).Once()

	report, err := suite.service.GetBudgetVsActualReport(ctx, "c1", "p1", 2024)

	suite.Require().NoError(err)
	suite.True(report.IncomeSummary.TotalBudgeted.IsZero())
	suite.True(report.IncomeSummary.TotalActual.Equal(mustDecimal("500")))
	suite.True(report.IncomeSummary.Variance.Equal(mustDecimal("500")))
	// No division by zero: the percent is reported as zero.
	suite.True(report.IncomeSummary.VariancePercent.IsZero())
	suite.True(report.MonthlyProjection[3].IncomeCompliance.IsZero())
}

func (suite *BudgetReportServiceTestSuite) TestReport_NetSummarySubtractsFieldByField() {
	ctx := context.Background()
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", 2024, domain.Income).
		Return([]domain.MonthlyPlanCell{planCell(domain.Income, "01", "2000", "1800")}, nil).Once()
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", 2024, domain.Expense).
		Return([]domain.MonthlyPlanCell{planCell(domain.Expense, "03", "1500", "1600")}, nil).Once()

	report, err := suite.service.GetBudgetVsActualReport(ctx, "c1", "p1", 2024)

	suite.Require().NoError(err)
	suite.True(report.NetSummary.TotalBudgeted.Equal(mustDecimal("6000")))
	suite.True(report.NetSummary.TotalActual.Equal(mustDecimal("2400")))
	suite.True(report.NetSummary.Variance.Equal(mustDecimal("-3600")))
	suite.True(report.NetSummary.VariancePercent.Equal(mustDecimal("-60.00")), "got %s", report.NetSummary.VariancePercent)
	suite.True(report.NetSummary.Monthly[0].Budgeted.Equal(mustDecimal("500")))
	suite.True(report.NetSummary.Monthly[0].Actual.Equal(mustDecimal("200")))

	january := report.MonthlyProjection[0]
	suite.True(january.NetBudgeted.Equal(mustDecimal("500")))
	suite.True(january.NetActual.Equal(mustDecimal("200")))
	suite.True(january.IncomeCompliance.Equal(mustDecimal("90.00")))
	suite.True(january.ExpenseCompliance.Equal(mustDecimal("106.67")), "got %s", january.ExpenseCompliance)
}

func (suite *BudgetReportServiceTestSuite) TestReport_ZeroYearDefaultsToCurrent() {
	ctx := context.Background()
	currentYear := time.Now().UTC().Year()
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", currentYear, domain.Income).
		Return([]domain.MonthlyPlanCell{}, nil).Once()
	suite.mockPlan.On("GetMonthlyPlanCells", ctx, "c1", "p1", currentYear, domain.Expense).
		Return([]domain.MonthlyPlanCell{}, nil).Once()

	report, err := suite.service.GetBudgetVsActualReport(ctx, "c1", "p1", 0)

	suite.Require().NoError(err)
	suite.Equal(currentYear, report.Year)
	suite.mockPlan.AssertExpectations(suite.T())
}

func TestBudgetReportService(t *testing.T) {
	suite.Run(t, new(BudgetReportServiceTestSuite))
}
