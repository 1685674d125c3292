package domain

import "github.com/shopspring/decimal"

// Direction classifies partidas, allocations and vouchers as money coming in
// or money going out.
type Direction string

const (
	Income  Direction = "INCOME"
	Expense Direction = "EXPENSE"
)

// Partida is a budget line/category (e.g. "Materials", "Labor"), scoped to a
// direction and organised in up to three hierarchy levels. Any level may be
// referenced from a voucher line; the engine does not assume a fixed depth.
type Partida struct {
	CompanyID  string    `json:"companyID"`
	Direction  Direction `json:"direction"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`      // 1..3
	ParentCode *string   `json:"parentCode"` // nil for level-1 entries
	IsActive   bool      `json:"isActive"`
	AuditFields
}

// PartidaKey identifies a partida across companies and directions. It is an
// immutable value object usable as a map key; no behaviour depends on field
// order.
type PartidaKey struct {
	CompanyID string
	Direction Direction
	Code      string
}

// Key returns the identifying key of the partida.
func (p Partida) Key() PartidaKey {
	return PartidaKey{CompanyID: p.CompanyID, Direction: p.Direction, Code: p.Code}
}

// Allocation is one budget revision row assigning an amount to a partida
// within a project/version. Multiple rows for the same partida/project/version
// are summed to obtain the total allocated amount.
type Allocation struct {
	CompanyID   string          `json:"companyID"`
	ProjectID   string          `json:"projectID"`
	Direction   Direction       `json:"direction"`
	Version     int             `json:"version"`
	PartidaCode string          `json:"partidaCode"`
	Sequence    int             `json:"sequence"`
	Amount      decimal.Decimal `json:"amount"` // non-negative
	AuditFields
}

// ProjectAllocation is the aggregated allocation amount of one
// (direction, partida) pair within a project, used when enumerating a whole
// project's budget.
type ProjectAllocation struct {
	Direction   Direction       `json:"direction"`
	PartidaCode string          `json:"partidaCode"`
	Amount      decimal.Decimal `json:"amount"`
}
