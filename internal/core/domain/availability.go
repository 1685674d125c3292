package domain

import "github.com/shopspring/decimal"

// Tier is the severity classification derived from percent-executed.
type Tier string

const (
	TierGreen  Tier = "GREEN"
	TierYellow Tier = "YELLOW"
	TierOrange Tier = "ORANGE"
	TierRed    Tier = "RED"
)

// Priority returns the ordering weight of a tier; higher means more severe.
func (t Tier) Priority() int {
	switch t {
	case TierRed:
		return 3
	case TierOrange:
		return 2
	case TierYellow:
		return 1
	default:
		return 0
	}
}

// TierForPercent maps a percent-executed value to its severity tier.
// Band lower edges are inclusive: 76.00 is Yellow, 91.00 is Orange,
// 100.00 is Red.
func TierForPercent(percent decimal.Decimal) Tier {
	switch {
	case percent.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return TierRed
	case percent.GreaterThanOrEqual(decimal.NewFromInt(91)):
		return TierOrange
	case percent.GreaterThanOrEqual(decimal.NewFromInt(76)):
		return TierYellow
	default:
		return TierGreen
	}
}

// AvailabilityView is the derived budget position of one partida within a
// project. It is ephemeral: recomputed on every query, never persisted or
// cached.
type AvailabilityView struct {
	PartidaCode     string          `json:"partidaCode"`
	Name            string          `json:"name"`
	Direction       Direction       `json:"direction"`
	Allocated       decimal.Decimal `json:"allocated"`
	Executed        decimal.Decimal `json:"executed"`
	Available       decimal.Decimal `json:"available"`       // allocated - executed
	PercentExecuted decimal.Decimal `json:"percentExecuted"` // 0 when allocated is 0
	Tier            Tier            `json:"tier"`
}
