package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/obracontrol/budget_control_app/internal/apperrors"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// VoucherPgRepository persists vouchers and serves the execution and ledger
// read sides from the same tables, so the "executed" aggregation and the
// cash-flow consolidation always see the write side's view of state.
type VoucherPgRepository struct {
	BaseRepository
}

// NewVoucherRepository creates a new repository for voucher data.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherPgRepository {
	return &VoucherPgRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.VoucherRepository   = (*VoucherPgRepository)(nil)
	_ portsrepo.ExecutionReader     = (*VoucherPgRepository)(nil)
	_ portsrepo.VoucherLedgerReader = (*VoucherPgRepository)(nil)
)

// SaveVoucher inserts the voucher header and its lines within one database
// transaction.
func (r *VoucherPgRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO vouchers (
			voucher_id, company_id, counterparty_id, project_id, direction, voucher_date,
			reference, net, tax, total, paid_amount, state,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, headerQuery,
		voucher.VoucherID,
		voucher.CompanyID,
		voucher.CounterpartyID,
		voucher.ProjectID,
		voucher.Direction,
		voucher.VoucherDate,
		voucher.Reference,
		voucher.Net,
		voucher.Tax,
		voucher.Total,
		voucher.PaidAmount,
		voucher.State,
		voucher.CreatedAt,
		voucher.CreatedBy,
		voucher.LastUpdatedAt,
		voucher.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert voucher %s: %w", voucher.VoucherID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO voucher_lines (voucher_id, sequence, partida_code, direction, net, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range voucher.Lines {
		batch.Queue(lineQuery, line.VoucherID, line.Sequence, line.PartidaCode, line.Direction, line.Net, line.Tax, line.Total)
	}
	results := tx.SendBatch(ctx, batch)
	for range voucher.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert voucher line for %s: %w", voucher.VoucherID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close voucher line batch for %s: %w", voucher.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves the voucher header with its lines populated.
func (r *VoucherPgRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	headerQuery := `
		SELECT voucher_id, company_id, counterparty_id, project_id, direction, voucher_date,
		       reference, net, tax, total, paid_amount, state,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM vouchers
		WHERE voucher_id = $1;
	`
	var v domain.Voucher
	err := r.Pool.QueryRow(ctx, headerQuery, voucherID).Scan(
		&v.VoucherID,
		&v.CompanyID,
		&v.CounterpartyID,
		&v.ProjectID,
		&v.Direction,
		&v.VoucherDate,
		&v.Reference,
		&v.Net,
		&v.Tax,
		&v.Total,
		&v.PaidAmount,
		&v.State,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	linesQuery := `
		SELECT voucher_id, sequence, partida_code, direction, net, tax, total
		FROM voucher_lines
		WHERE voucher_id = $1
		ORDER BY sequence;
	`
	rows, err := r.Pool.Query(ctx, linesQuery, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for voucher %s: %w", voucherID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.VoucherLine
		if err := rows.Scan(&line.VoucherID, &line.Sequence, &line.PartidaCode, &line.Direction, &line.Net, &line.Tax, &line.Total); err != nil {
			return nil, fmt.Errorf("failed to scan voucher line: %w", err)
		}
		v.Lines = append(v.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voucher lines: %w", err)
	}
	return &v, nil
}

// UpdatePayment records an abono and the resulting state transition as one
// atomic unit of work.
func (r *VoucherPgRepository) UpdatePayment(ctx context.Context, voucherID string, paidAmount decimal.Decimal, state domain.VoucherState, abono domain.Abono, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE vouchers
		SET paid_amount = $2, state = $3, last_updated_at = $4, last_updated_by = $5
		WHERE voucher_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery, voucherID, paidAmount, state, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update payment for voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	abonoQuery := `
		INSERT INTO abonos (voucher_id, amount, description, abono_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, abonoQuery, abono.VoucherID, abono.Amount, abono.Description, abono.AbonoDate, now, userID); err != nil {
		return fmt.Errorf("failed to insert abono for voucher %s: %w", voucherID, err)
	}

	return r.Commit(ctx, tx)
}

// MarkVoided transitions the voucher to the voided state. The row stays on
// record for audit; execution and ledger queries filter it out.
func (r *VoucherPgRepository) MarkVoided(ctx context.Context, voucherID string, userID string, now time.Time) error {
	query := `
		UPDATE vouchers
		SET state = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, voucherID, domain.VoucherVoided, now, userID)
	if err != nil {
		return fmt.Errorf("failed to void voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListExecutionAmounts returns the line totals posted against a partida,
// excluding lines of voided vouchers.
func (r *VoucherPgRepository) ListExecutionAmounts(ctx context.Context, companyID string, direction domain.Direction, partidaCode string) ([]decimal.Decimal, error) {
	query := `
		SELECT l.total
		FROM voucher_lines l
		JOIN vouchers v ON v.voucher_id = l.voucher_id
		WHERE v.company_id = $1 AND l.direction = $2 AND l.partida_code = $3 AND v.state <> $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, direction, partidaCode, domain.VoucherVoided)
	if err != nil {
		return nil, fmt.Errorf("failed to query execution records for partida %s: %w", partidaCode, err)
	}
	defer rows.Close()

	amounts := make([]decimal.Decimal, 0)
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("failed to scan execution amount: %w", err)
		}
		amounts = append(amounts, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate execution records: %w", err)
	}
	return amounts, nil
}

// ListVoucherSummaries lists the company's non-voided vouchers for cash-flow
// consolidation, with the latest abono description and the project name
// joined in for the description fallback chain.
func (r *VoucherPgRepository) ListVoucherSummaries(ctx context.Context, companyID string, from, to *time.Time) ([]domain.VoucherSummary, error) {
	query := `
		SELECT v.voucher_id, v.reference, v.voucher_date, v.total, v.direction,
		       COALESCE(a.description, ''), v.project_id, COALESCE(p.name, '')
		FROM vouchers v
		LEFT JOIN projects p ON p.company_id = v.company_id AND p.project_id = v.project_id
		LEFT JOIN LATERAL (
			SELECT description
			FROM abonos
			WHERE voucher_id = v.voucher_id AND description <> ''
			ORDER BY abono_date DESC
			LIMIT 1
		) a ON true
		WHERE v.company_id = $1 AND v.state <> $2
		  AND ($3::timestamptz IS NULL OR v.voucher_date >= $3)
		  AND ($4::timestamptz IS NULL OR v.voucher_date <= $4);
	`
	rows, err := r.Pool.Query(ctx, query, companyID, domain.VoucherVoided, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.VoucherSummary, 0)
	for rows.Next() {
		var s domain.VoucherSummary
		if err := rows.Scan(&s.VoucherID, &s.Reference, &s.Date, &s.Amount, &s.Direction, &s.AbonoDescription, &s.ProjectID, &s.ProjectName); err != nil {
			return nil, fmt.Errorf("failed to scan voucher summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voucher summaries: %w", err)
	}
	return summaries, nil
}
