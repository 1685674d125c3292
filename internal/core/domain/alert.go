package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert is a derived budget warning for one partida. Alerts are generated on
// demand and never persisted; the ID is a fresh opaque value per generation.
type Alert struct {
	AlertID         string          `json:"alertID"`
	Severity        string          `json:"severity"`
	Tier            Tier            `json:"tier"`
	Message         string          `json:"message"`
	PartidaCode     string          `json:"partidaCode"`
	PercentExecuted decimal.Decimal `json:"percentExecuted"`
	Allocated       decimal.Decimal `json:"allocated"`
	Executed        decimal.Decimal `json:"executed"`
	Available       decimal.Decimal `json:"available"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
