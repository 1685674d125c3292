package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const monthKeyLayout = "2006-01"

// cashflowService merges income and expense vouchers into a single
// chronological movement ledger with running balance, monthly buckets and a
// trailing-month projection.
type cashflowService struct {
	BaseService
	ledgerRepo portsrepo.VoucherLedgerReader
	now        func() time.Time
}

// NewCashflowService creates a new cash-flow consolidator.
func NewCashflowService(ledgerRepo portsrepo.VoucherLedgerReader) portssvc.CashflowSvcFacade {
	return &cashflowService{
		ledgerRepo: ledgerRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.CashflowSvcFacade = (*cashflowService)(nil)

// GetCashflow implements portssvc.CashflowSvcFacade.
func (s *cashflowService) GetCashflow(ctx context.Context, companyID string, from, to *time.Time) (*domain.CashflowReport, error) {
	summaries, err := s.ledgerRepo.ListVoucherSummaries(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for cashflow", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list vouchers for company %s: %w", companyID, err)
	}

	movements := make([]domain.Movement, 0, len(summaries))
	for _, v := range summaries {
		movements = append(movements, s.toMovement(v))
	}

	months := bucketByMonth(movements)

	report := &domain.CashflowReport{
		Summary:     s.buildSummary(months),
		Projections: latestMonthsAscending(months, 6),
		Movements:   withRunningBalance(movements),
	}

	s.LogInfo(ctx, "Cashflow consolidated",
		slog.String("company_id", companyID),
		slog.Int("movement_count", len(report.Movements)),
		slog.Int("month_count", len(months)))
	return report, nil
}

// toMovement builds one movement from a voucher summary, filling the
// documented defaults: date falls back to now, amount to zero and the
// description chain is abono text, then project name, then a synthesized
// label from the voucher reference.
func (s *cashflowService) toMovement(v domain.VoucherSummary) domain.Movement {
	prefix := "EGR-"
	if v.Direction == domain.Income {
		prefix = "ING-"
	}

	date := s.now()
	if v.Date != nil {
		date = *v.Date
	}

	amount := decimal.Zero
	if v.Amount != nil {
		amount = *v.Amount
	}

	description := v.AbonoDescription
	if description == "" {
		description = v.ProjectName
	}
	if description == "" {
		description = fmt.Sprintf("Movimiento %s", v.Reference)
	}

	return domain.Movement{
		MovementID:      prefix + v.VoucherID,
		Date:            date,
		Direction:       v.Direction,
		Amount:          amount,
		Description:     description,
		ProjectLabel:    v.ProjectName,
		SourceVoucherID: v.VoucherID,
	}
}

// bucketByMonth groups movements into per-month income/expense running sums.
func bucketByMonth(movements []domain.Movement) map[string]*domain.CashflowMonth {
	months := make(map[string]*domain.CashflowMonth)
	for _, m := range movements {
		key := m.Date.Format(monthKeyLayout)
		bucket, ok := months[key]
		if !ok {
			bucket = &domain.CashflowMonth{MonthKey: key}
			months[key] = bucket
		}
		if m.Direction == domain.Income {
			bucket.Income = bucket.Income.Add(m.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(m.Amount)
		}
		bucket.Net = bucket.Income.Sub(bucket.Expense)
	}
	return months
}

// buildSummary reports the latest month present in the data (or the current
// month when there is none) with the net variation against the immediately
// preceding month present.
func (s *cashflowService) buildSummary(months map[string]*domain.CashflowMonth) domain.CashflowSummary {
	if len(months) == 0 {
		return domain.CashflowSummary{MonthKey: s.now().Format(monthKeyLayout)}
	}

	keys := sortedMonthKeys(months)
	latest := keys[len(keys)-1]
	bucket := months[latest]

	summary := domain.CashflowSummary{
		MonthKey: latest,
		Income:   bucket.Income,
		Expense:  bucket.Expense,
		Net:      bucket.Net,
	}

	if len(keys) > 1 {
		previous := months[keys[len(keys)-2]]
		if !previous.Net.IsZero() {
			summary.PercentVariation = bucket.Net.Sub(previous.Net).Div(previous.Net).Mul(oneHundred).Round(2)
		}
	}
	return summary
}

// latestMonthsAscending returns up to limit of the most recent months,
// ordered ascending for display.
func latestMonthsAscending(months map[string]*domain.CashflowMonth, limit int) []domain.CashflowMonth {
	keys := sortedMonthKeys(months)
	if len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}
	out := make([]domain.CashflowMonth, 0, len(keys))
	for _, k := range keys {
		out = append(out, *months[k])
	}
	return out
}

func sortedMonthKeys(months map[string]*domain.CashflowMonth) []string {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// withRunningBalance sorts the movements chronologically by (date, id),
// accumulates the running balance (income adds, expense subtracts) and then
// reverses the list to most-recent-first. The balances keep the values
// computed in chronological order; they are not recomputed after the
// reversal.
func withRunningBalance(movements []domain.Movement) []domain.Movement {
	sort.Slice(movements, func(i, j int) bool {
		if !movements[i].Date.Equal(movements[j].Date) {
			return movements[i].Date.Before(movements[j].Date)
		}
		return movements[i].MovementID < movements[j].MovementID
	})

	balance := decimal.Zero
	for i := range movements {
		if movements[i].Direction == domain.Income {
			balance = balance.Add(movements[i].Amount)
		} else {
			balance = balance.Sub(movements[i].Amount)
		}
		movements[i].RunningBalance = balance
	}

	for i, j := 0, len(movements)-1; i < j; i, j = i+1, j-1 {
		movements[i], movements[j] = movements[j], movements[i]
	}
	return movements
}
