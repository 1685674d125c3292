package dto

import (
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementResponse is one consolidated cash-flow movement.
type MovementResponse struct {
	MovementID      string          `json:"movementID"`
	Date            string          `json:"date"` // RFC 3339
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ProjectLabel    string          `json:"projectLabel"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	SourceVoucherID string          `json:"sourceVoucherID"`
}

// CashflowResponse is the consolidated cash-flow report.
type CashflowResponse struct {
	Summary     domain.CashflowSummary `json:"summary"`
	Projections []domain.CashflowMonth `json:"projections"`
	Movements   []MovementResponse     `json:"movements"`
}

// ToCashflowResponse maps a domain cash-flow report to its response DTO.
func ToCashflowResponse(r *domain.CashflowReport) CashflowResponse {
	movements := make([]MovementResponse, len(r.Movements))
	for i, m := range r.Movements {
		movements[i] = MovementResponse{
			MovementID:      m.MovementID,
			Date:            m.Date.Format("2006-01-02T15:04:05Z07:00"),
			Direction:       string(m.Direction),
			Amount:          m.Amount,
			Description:     m.Description,
			ProjectLabel:    m.ProjectLabel,
			RunningBalance:  m.RunningBalance,
			SourceVoucherID: m.SourceVoucherID,
		}
	}
	return CashflowResponse{
		Summary:     r.Summary,
		Projections: r.Projections,
		Movements:   movements,
	}
}

// BudgetVsActualResponse is the consolidated budget-vs-actual report.
type BudgetVsActualResponse struct {
	Year              int                             `json:"year"`
	IncomeSummary     domain.AnnualSummary            `json:"incomeSummary"`
	ExpenseSummary    domain.AnnualSummary            `json:"expenseSummary"`
	NetSummary        domain.AnnualSummary            `json:"netSummary"`
	MonthlyProjection []domain.MonthlyProjectionEntry `json:"monthlyProjection"`
}

// ToBudgetVsActualResponse maps the domain report to its response DTO.
func ToBudgetVsActualResponse(r *domain.BudgetVsActualReport) BudgetVsActualResponse {
	return BudgetVsActualResponse{
		Year:              r.Year,
		IncomeSummary:     r.IncomeSummary,
		ExpenseSummary:    r.ExpenseSummary,
		NetSummary:        r.NetSummary,
		MonthlyProjection: r.MonthlyProjection[:],
	}
}
