package services

import (
	"context"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/obracontrol/budget_control_app/internal/dto"
)

// VoucherSvcFacade owns the voucher lifecycle: creation with structural and
// advisory budget validation, abono registration and voiding.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*dto.CreateVoucherResponse, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	RegisterAbono(ctx context.Context, voucherID string, req dto.RegisterAbonoRequest, userID string) (*domain.Voucher, error)
	VoidVoucher(ctx context.Context, voucherID string, confirm bool, userID string) (*domain.Voucher, error)
}
