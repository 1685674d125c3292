package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is one consolidated cash-flow entry derived from a voucher.
// RunningBalance is computed over the chronologically ordered movement list
// and kept unchanged when the list is reversed for display.
type Movement struct {
	MovementID      string          `json:"movementID"` // "ING-"/"EGR-" + voucher id
	Date            time.Time       `json:"date"`
	Direction       Direction       `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ProjectLabel    string          `json:"projectLabel"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	SourceVoucherID string          `json:"sourceVoucherID"`
}

// VoucherSummary is the read-side projection of a voucher used by the
// cash-flow consolidator. Date and Amount are optional in the source records;
// the consolidator fills the documented defaults.
type VoucherSummary struct {
	VoucherID        string
	Reference        string
	Date             *time.Time
	Amount           *decimal.Decimal
	Direction        Direction
	AbonoDescription string
	ProjectID        string
	ProjectName      string
}
