package dto

import (
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherLineRequest is one line of a voucher being created.
type CreateVoucherLineRequest struct {
	PartidaCode string          `json:"partidaCode" binding:"required,partida_code"`
	Net         decimal.Decimal `json:"net" binding:"required"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total" binding:"required"`
}

// CreateVoucherRequest creates an expense or income voucher with its lines.
type CreateVoucherRequest struct {
	CompanyID      string                     `json:"companyID" binding:"required"`
	ProjectID      string                     `json:"projectID" binding:"required"`
	CounterpartyID string                     `json:"counterpartyID" binding:"required"`
	Direction      domain.Direction           `json:"direction" binding:"required,oneof=INCOME EXPENSE"`
	VoucherDate    *time.Time                 `json:"voucherDate"`
	Reference      string                     `json:"reference"`
	Net            decimal.Decimal            `json:"net" binding:"required"`
	Tax            decimal.Decimal            `json:"tax"`
	Total          decimal.Decimal            `json:"total" binding:"required"`
	Lines          []CreateVoucherLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateVoucherResponse returns the saved voucher together with the advisory
// budget validation outcome and the refreshed project alert set.
type CreateVoucherResponse struct {
	Voucher       VoucherResponse `json:"voucher"`
	BudgetWarning string          `json:"budgetWarning,omitempty"`
	Alerts        []AlertResponse `json:"alerts"`
}

// RegisterAbonoRequest records a payment/collection against a voucher.
type RegisterAbonoRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	AbonoDate   *time.Time      `json:"abonoDate"`
}

// VoidVoucherRequest voids a voucher. Confirm must be set to void a voucher
// that already has payments recorded.
type VoidVoucherRequest struct {
	Confirm bool `json:"confirm"`
}

// VoucherLineResponse is one persisted voucher line.
type VoucherLineResponse struct {
	Sequence    int             `json:"sequence"`
	PartidaCode string          `json:"partidaCode"`
	Net         decimal.Decimal `json:"net"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// VoucherResponse is the API representation of a voucher.
type VoucherResponse struct {
	VoucherID      string                `json:"voucherID"`
	CompanyID      string                `json:"companyID"`
	CounterpartyID string                `json:"counterpartyID"`
	ProjectID      string                `json:"projectID"`
	Direction      string                `json:"direction"`
	VoucherDate    time.Time             `json:"voucherDate"`
	Reference      string                `json:"reference"`
	Net            decimal.Decimal       `json:"net"`
	Tax            decimal.Decimal       `json:"tax"`
	Total          decimal.Decimal       `json:"total"`
	PaidAmount     decimal.Decimal       `json:"paidAmount"`
	State          string                `json:"state"`
	Lines          []VoucherLineResponse `json:"lines,omitempty"`
}

// ToVoucherResponse maps a domain voucher to its response DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	lines := make([]VoucherLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = VoucherLineResponse{
			Sequence:    l.Sequence,
			PartidaCode: l.PartidaCode,
			Net:         l.Net,
			Tax:         l.Tax,
			Total:       l.Total,
		}
	}
	return VoucherResponse{
		VoucherID:      v.VoucherID,
		CompanyID:      v.CompanyID,
		CounterpartyID: v.CounterpartyID,
		ProjectID:      v.ProjectID,
		Direction:      string(v.Direction),
		VoucherDate:    v.VoucherDate,
		Reference:      v.Reference,
		Net:            v.Net,
		Tax:            v.Tax,
		Total:          v.Total,
		PaidAmount:     v.PaidAmount,
		State:          string(v.State),
		Lines:          lines,
	}
}
