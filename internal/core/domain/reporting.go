package domain

import "github.com/shopspring/decimal"

// MonthlyFigures is one month's budgeted/actual pair inside an annual summary.
type MonthlyFigures struct {
	Budgeted decimal.Decimal `json:"budgeted"`
	Actual   decimal.Decimal `json:"actual"`
}

// AnnualSummary aggregates twelve months of budgeted and actual amounts for
// one direction (or the net of both). Variance is actual minus budgeted.
type AnnualSummary struct {
	TotalBudgeted   decimal.Decimal               `json:"totalBudgeted"`
	TotalActual     decimal.Decimal               `json:"totalActual"`
	Variance        decimal.Decimal               `json:"variance"`
	VariancePercent decimal.Decimal               `json:"variancePercent"`
	Monthly         [MonthsPerYear]MonthlyFigures `json:"monthly"`
}

// MonthlyProjectionEntry combines both directions for one calendar month of a
// budget-vs-actual report. Compliance is actual/budgeted*100, 0 when the
// budgeted amount is zero.
type MonthlyProjectionEntry struct {
	Month             int             `json:"month"` // 1..12
	IncomeBudgeted    decimal.Decimal `json:"incomeBudgeted"`
	IncomeActual      decimal.Decimal `json:"incomeActual"`
	IncomeCompliance  decimal.Decimal `json:"incomeCompliance"`
	ExpenseBudgeted   decimal.Decimal `json:"expenseBudgeted"`
	ExpenseActual     decimal.Decimal `json:"expenseActual"`
	ExpenseCompliance decimal.Decimal `json:"expenseCompliance"`
	NetBudgeted       decimal.Decimal `json:"netBudgeted"`
	NetActual         decimal.Decimal `json:"netActual"`
}

// BudgetVsActualReport is the consolidated project/year report: one summary
// per direction, a derived net summary and the combined monthly projection.
type BudgetVsActualReport struct {
	Year              int                                   `json:"year"`
	IncomeSummary     AnnualSummary                         `json:"incomeSummary"`
	ExpenseSummary    AnnualSummary                         `json:"expenseSummary"`
	NetSummary        AnnualSummary                         `json:"netSummary"`
	MonthlyProjection [MonthsPerYear]MonthlyProjectionEntry `json:"monthlyProjection"`
}

// CashflowMonth is one calendar month's consolidated income/expense totals.
type CashflowMonth struct {
	MonthKey string          `json:"monthKey"` // "2006-01"
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Net      decimal.Decimal `json:"net"`
}

// CashflowSummary describes the latest month present in the data, with the
// net variation against the immediately preceding month present.
type CashflowSummary struct {
	MonthKey         string          `json:"monthKey"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Net              decimal.Decimal `json:"net"`
	PercentVariation decimal.Decimal `json:"percentVariation"`
}

// CashflowReport bundles the consolidator output: latest-month summary, up to
// six months of projections in ascending order and the full movement list in
// most-recent-first order.
type CashflowReport struct {
	Summary     CashflowSummary `json:"summary"`
	Projections []CashflowMonth `json:"projections"`
	Movements   []Movement      `json:"movements"`
}
