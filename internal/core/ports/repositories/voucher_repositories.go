package repositories

import (
	"context"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherRepository persists vouchers and their lines. Header and lines are
// always written inside one database transaction.
type VoucherRepository interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// FindVoucherByID returns the voucher header with its lines populated, or
	// apperrors.ErrNotFound.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// UpdatePayment records an abono: paid amount and state change committed
	// as a single atomic header update.
	UpdatePayment(ctx context.Context, voucherID string, paidAmount decimal.Decimal, state domain.VoucherState, abono domain.Abono, userID string, now time.Time) error

	// MarkVoided transitions the voucher to the voided state. Voided vouchers
	// stay on record for audit but no longer count as execution.
	MarkVoided(ctx context.Context, voucherID string, userID string, now time.Time) error
}

// VoucherLedgerReader lists voucher summaries for cash-flow consolidation,
// either for an explicit date range or all-time when from/to are nil.
type VoucherLedgerReader interface {
	ListVoucherSummaries(ctx context.Context, companyID string, from, to *time.Time) ([]domain.VoucherSummary, error)
}
