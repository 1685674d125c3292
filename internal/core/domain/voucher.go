package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherState models the voucher lifecycle. Transitions are monotonic: a
// voucher may move Registered -> PartiallyPaid -> FullyPaid as abonos are
// recorded but never regresses, and Voided is reachable only from Registered
// unless the caller explicitly confirms voiding a paid voucher.
type VoucherState string

const (
	VoucherRegistered    VoucherState = "REGISTERED"
	VoucherPartiallyPaid VoucherState = "PARTIALLY_PAID"
	VoucherFullyPaid     VoucherState = "FULLY_PAID"
	VoucherVoided        VoucherState = "VOIDED"
)

// Voucher is an expense (comprobante de pago) or income (venta/cobro)
// document: a header plus an ordered list of lines. The sum of line totals
// must equal the header total at save time, and no partida may appear twice
// within one voucher.
type Voucher struct {
	VoucherID      string          `json:"voucherID"`
	CompanyID      string          `json:"companyID"`
	CounterpartyID string          `json:"counterpartyID"` // supplier or client
	ProjectID      string          `json:"projectID"`
	Direction      Direction       `json:"direction"`
	VoucherDate    time.Time       `json:"voucherDate"`
	Reference      string          `json:"reference"` // document number shown to users
	Net            decimal.Decimal `json:"net"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	State          VoucherState    `json:"state"`
	Lines          []VoucherLine   `json:"lines,omitempty"`
	AuditFields
}

// VoucherLine is one execution record posted against a partida. Lines are
// owned by their parent voucher and counted towards the partida's executed
// amount while the voucher is not voided.
type VoucherLine struct {
	VoucherID   string          `json:"voucherID"`
	Sequence    int             `json:"sequence"`
	PartidaCode string          `json:"partidaCode"`
	Direction   Direction       `json:"direction"`
	Net         decimal.Decimal `json:"net"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Abono is a partial or full payment/collection event recorded against a
// voucher, driving its state transition.
type Abono struct {
	VoucherID   string          `json:"voucherID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AbonoDate   time.Time       `json:"abonoDate"`
}

// Outstanding returns the unpaid remainder of the voucher total.
func (v Voucher) Outstanding() decimal.Decimal {
	return v.Total.Sub(v.PaidAmount)
}
