package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashflowServiceTestSuite struct {
	suite.Suite
	mockLedger *MockVoucherLedgerReader
	service    portssvc.CashflowSvcFacade
}

func (suite *CashflowServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockVoucherLedgerReader)
	suite.service = services.NewCashflowService(suite.mockLedger)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func amountPtr(s string) *decimal.Decimal {
	d := mustDecimal(s)
	return &d
}

func (suite *CashflowServiceTestSuite) TestGetCashflow_RunningBalanceAndOrdering() {
	ctx := context.Background()
	summaries := []domain.VoucherSummary{
		{VoucherID: "v2", Reference: "F-002", Date: datePtr(2024, time.January, 10), Amount: amountPtr("400"), Direction: domain.Expense, ProjectID: "p1", ProjectName: "Edificio Central"},
		{VoucherID: "v1", Reference: "F-001", Date: datePtr(2024, time.January, 5), Amount: amountPtr("1000"), Direction: domain.Income, ProjectID: "p1", ProjectName: "Edificio Central"},
		{VoucherID: "v3", Reference: "F-003", Date: datePtr(2024, time.February, 1), Amount: amountPtr("200"), Direction: domain.Income, ProjectID: "p1", ProjectName: "Edificio Central"},
	}
	suite.mockLedger.On("ListVoucherSummaries", ctx, "c1", (*time.Time)(nil), (*time.Time)(nil)).Return(summaries, nil).Once()

	report, err := suite.service.GetCashflow(ctx, "c1", nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Movements, 3)

	// Most recent first for display, with the balances that were accumulated
	// in chronological order: 1000, 600, 800.
	suite.Equal("ING-v3", report.Movements[0].MovementID)
	suite.True(report.Movements[0].RunningBalance.Equal(mustDecimal("800")))
	suite.Equal("EGR-v2", report.Movements[1].MovementID)
	suite.True(report.Movements[1].RunningBalance.Equal(mustDecimal("600")))
	suite.Equal("ING-v1", report.Movements[2].MovementID)
	suite.True(report.Movements[2].RunningBalance.Equal(mustDecimal("1000")))
}

func (suite *CashflowServiceTestSuite) TestGetCashflow_SummaryAndProjections() {
	ctx := context.Background()
	summaries := []domain.VoucherSummary{
		{VoucherID: "v1", Reference: "F-001", Date: datePtr(2024, time.January, 5), Amount: amountPtr("1000"), Direction: domain.Income, ProjectName: "Edificio Central"},
		{VoucherID: "v2", Reference: "F-002", Date: datePtr(2024, time.January, 10), Amount: amountPtr("400"), Direction: domain.Expense, ProjectName: "Edificio Central"},
		{VoucherID: "v3", Reference: "F-003", Date: datePtr(2024, time.February, 1), Amount: amountPtr("200"), Direction: domain.Income, ProjectName: "Edificio Central"},
	}
	suite.mockLedger.On("ListVoucherSummaries", ctx, "c1", (*time.Time)(nil), (*time.Time)(nil)).Return(summaries, nil).Once()

	report, err := suite.service.GetCashflow(ctx, "c1", nil, nil)

	suite.Require().NoError(err)

	// Summary describes the latest month present: net 200 against January's
	// net 600 is a -66.67% variation.
	suite.Equal("2024-02", report.Summary.MonthKey)
	suite.True(report.Summary.Income.Equal(mustDecimal("200")))
	suite.True(report.Summary.Expense.IsZero())
	suite.True(report.Summary.Net.Equal(mustDecimal("200")))
	suite.True(report.Summary.PercentVariation.Equal(mustDecimal("-66.67")), "got %s", report.Summary.PercentVariation)

	// Projections are ascending by month.
	suite.Require().Len(report.Projections, 2)
	suite.Equal("2024-01", report.Projections[0].MonthKey)
	suite.True(report.Projections[0].Income.Equal(mustDecimal("1000")))
	suite.True(report.Projections[0].Expense.Equal(mustDecimal("400")))
	suite.True(report.Projections[0].Net.Equal(mustDecimal("600")))
	suite.Equal("2024-02", report.Projections[1].MonthKey)
}

func (suite *CashflowServiceTestSuite) TestGetCashflow_ProjectionsCappedAtSixMonths() {
	ctx := context.Background()
	summaries := make([]domain.VoucherSummary, 0, 8)
	for month := time.January; month <= time.August; month++ {
		summaries = append(summaries, domain.VoucherSummary{
			VoucherID:   "v" + month.String(),
			Reference:   "F-" + month.String(),
			Date:        datePtr(2024, month, 15),
			Amount:      amountPtr("100"),
			Direction:   domain.Income,
			ProjectName: "Edificio Central",
		})
	}
	suite.mockLedger.On("ListVoucherSummaries", ctx, "c1", (*time.Time)(nil), (*time.Time)(nil)).Return(summaries, nil).Once()

	report, err := suite.service.GetCashflow(ctx, "c1", nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Projections, 6)
	suite.Equal("2024-03", report.Projections[0].MonthKey)
	suite.Equal("2024-08", report.Projections[5].MonthKey)
}

func (suite *CashflowServiceTestSuite) TestGetCashflow_DescriptionChainAndDefaults() {
	ctx := context.Background()
	summaries := []domain.VoucherSummary{
		// Abono description wins over the project name.
		{VoucherID: "v1", Reference: "F-001", Date: datePtr(2024, time.March, 1), Amount: amountPtr("100"), Direction: domain.Expense, AbonoDescription: "Pago parcial fierro", ProjectName: "Edificio Central"},
		// No abono description: the project name is used.
		{VoucherID: "v2", Reference: "F-002", Date: datePtr(2024, time.March, 2), Amount: amountPtr("100"), Direction: domain.Expense, ProjectName: "Edificio Central"},
		// Neither: a label is synthesized from the reference, and a missing
		// amount consolidates as zero instead of breaking the balance.
		{VoucherID: "v3", Reference: "F-003", Date: datePtr(2024, time.March, 3), Direction: domain.Income},
	}
	suite.mockLedger.On("ListVoucherSummaries", ctx, "c1", (*time.Time)(nil), (*time.Time)(nil)).Return(summaries, nil).Once()

	report, err := suite.service.GetCashflow(ctx, "c1", nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Movements, 3)
	// Display order is most recent first.
	suite.Equal("Movimiento F-003", report.Movements[0].Description)
	suite.True(report.Movements[0].Amount.IsZero())
	suite.True(report.Movements[0].RunningBalance.Equal(mustDecimal("-200")))
	suite.Equal("Edificio Central", report.Movements[1].Description)
	suite.Equal("Pago parcial fierro", report.Movements[2].Description)
}

func (suite *CashflowServiceTestSuite) TestGetCashflow_MissingDateDefaultsToNow() {
	ctx := context.Background()
	summaries := []domain.VoucherSummary{
		{VoucherID: "v1", Reference: "F-001", Amount: amountPtr("100"), Direction: domain.Income, ProjectName: "Edificio Central"},
	}
	suite.mockLedger.On("ListVoucherSummaries", ctx, "c1", (*time.Time)(nil), (*time.Time)(nil)).Return(summaries, nil).Once()

	before := time.Now().UTC()
	report, err := suite.service.GetCashflow(ctx, "c1", nil, nil)
	after := time.Now().UTC()

	suite.Require().NoError(err)
	suite.Require().Len(report.Movements, 1)
	suite.False(report.Movements[0].Date.Before(before))
	suite.False(report.Movements[0].Date.After(after))
}

func (suite *CashflowServiceTestSuite) TestGetCashflow_EmptyLedger() {
	ctx := context.Background()
	suite.mockLedger.On("ListVoucherSummaries", ctx, "c1", (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.VoucherSummary{}, nil).Once()

	report, err := suite.service.GetCashflow(ctx, "c1", nil, nil)

	suite.Require().NoError(err)
	suite.Empty(report.Movements)
	suite.Empty(report.Projections)
	suite.Equal(time.Now().UTC().Format("2006-01"), report.Summary.MonthKey)
	suite.True(report.Summary.Net.IsZero())
}

func TestCashflowService(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}
