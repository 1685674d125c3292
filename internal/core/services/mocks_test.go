package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/core/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock repositories ---

type MockPartidaReader struct {
	mock.Mock
}

func (m *MockPartidaReader) FindPartida(ctx context.Context, companyID string, direction domain.Direction, code string) (*domain.Partida, error) {
	args := m.Called(ctx, companyID, direction, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}

var _ portsrepo.PartidaReader = (*MockPartidaReader)(nil)

type MockAllocationReader struct {
	mock.Mock
}

func (m *MockAllocationReader) ListAllocationAmounts(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) ([]decimal.Decimal, error) {
	args := m.Called(ctx, companyID, projectID, direction, partidaCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func (m *MockAllocationReader) ListProjectAllocations(ctx context.Context, companyID, projectID string) ([]domain.ProjectAllocation, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAllocation), args.Error(1)
}

var _ portsrepo.AllocationReader = (*MockAllocationReader)(nil)

type MockExecutionReader struct {
	mock.Mock
}

func (m *MockExecutionReader) ListExecutionAmounts(ctx context.Context, companyID string, direction domain.Direction, partidaCode string) ([]decimal.Decimal, error) {
	args := m.Called(ctx, companyID, direction, partidaCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

var _ portsrepo.ExecutionReader = (*MockExecutionReader)(nil)

type MockMonthlyPlanReader struct {
	mock.Mock
}

func (m *MockMonthlyPlanReader) GetMonthlyPlanCells(ctx context.Context, companyID, projectID string, year int, direction domain.Direction) ([]domain.MonthlyPlanCell, error) {
	args := m.Called(ctx, companyID, projectID, year, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPlanCell), args.Error(1)
}

var _ portsrepo.MonthlyPlanReader = (*MockMonthlyPlanReader)(nil)

type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) UpdatePayment(ctx context.Context, voucherID string, paidAmount decimal.Decimal, state domain.VoucherState, abono domain.Abono, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, paidAmount, state, abono, userID, now)
	return args.Error(0)
}

func (m *MockVoucherRepository) MarkVoided(ctx context.Context, voucherID string, userID string, now time.Time) error {
	args := m.Called(ctx, voucherID, userID, now)
	return args.Error(0)
}

var _ portsrepo.VoucherRepository = (*MockVoucherRepository)(nil)

type MockVoucherLedgerReader struct {
	mock.Mock
}

func (m *MockVoucherLedgerReader) ListVoucherSummaries(ctx context.Context, companyID string, from, to *time.Time) ([]domain.VoucherSummary, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherSummary), args.Error(1)
}

var _ portsrepo.VoucherLedgerReader = (*MockVoucherLedgerReader)(nil)

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserReader = (*MockUserReader)(nil)

// --- Mock service facades ---

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetAvailability(ctx context.Context, companyID, projectID, partidaCode string) (*domain.AvailabilityView, error) {
	args := m.Called(ctx, companyID, projectID, partidaCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityView), args.Error(1)
}

func (m *MockAvailabilityService) GetAvailabilityForDirection(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) (*domain.AvailabilityView, error) {
	args := m.Called(ctx, companyID, projectID, direction, partidaCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityView), args.Error(1)
}

var _ portssvc.AvailabilitySvcFacade = (*MockAvailabilityService)(nil)

type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateVoucher(ctx context.Context, req dto.ValidateVoucherRequest) (*dto.ValidationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ValidationResponse), args.Error(1)
}

var _ portssvc.ValidationSvcFacade = (*MockValidationService)(nil)

type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) GetProjectAlerts(ctx context.Context, companyID, projectID string) ([]domain.Alert, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

// --- Deterministic ID generation ---

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var _ services.IDGenerator = (*seqIDGenerator)(nil)

// mustDecimal parses a decimal literal, panicking on malformed test data.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
