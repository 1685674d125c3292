package domain

import "github.com/shopspring/decimal"

// MonthsPerYear is the fixed bucket count of the calendar-based plan.
const MonthsPerYear = 12

// MonthlyPlanCell holds the budgeted-vs-actual plan of one partida for one
// project/year/direction: twelve budgeted amounts, twelve actual amounts and
// a carried-forward opening amount. Cumulative totals are always derived from
// the per-month values, never stored separately.
type MonthlyPlanCell struct {
	Year        int                            `json:"year"`
	CompanyID   string                         `json:"companyID"`
	ProjectID   string                         `json:"projectID"`
	Direction   Direction                      `json:"direction"`
	PartidaCode string                         `json:"partidaCode"`
	Budgeted    [MonthsPerYear]decimal.Decimal `json:"budgeted"`
	Actual      [MonthsPerYear]decimal.Decimal `json:"actual"`
	Opening     decimal.Decimal                `json:"opening"`
}

// TotalBudgeted sums the twelve monthly budgeted amounts.
func (c MonthlyPlanCell) TotalBudgeted() decimal.Decimal {
	total := decimal.Zero
	for _, m := range c.Budgeted {
		total = total.Add(m)
	}
	return total
}

// TotalActual sums the twelve monthly actual amounts.
func (c MonthlyPlanCell) TotalActual() decimal.Decimal {
	total := decimal.Zero
	for _, m := range c.Actual {
		total = total.Add(m)
	}
	return total
}
