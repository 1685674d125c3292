package domain_test

import (
	"testing"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTierForPercent(t *testing.T) {
	tests := []struct {
		name    string
		percent string
		want    domain.Tier
	}{
		{name: "zero is green", percent: "0", want: domain.TierGreen},
		{name: "just below yellow edge", percent: "75.99", want: domain.TierGreen},
		{name: "yellow lower edge inclusive", percent: "76.00", want: domain.TierYellow},
		{name: "just below orange edge", percent: "90.99", want: domain.TierYellow},
		{name: "orange lower edge inclusive", percent: "91.00", want: domain.TierOrange},
		{name: "just below red edge", percent: "99.99", want: domain.TierOrange},
		{name: "red lower edge inclusive", percent: "100.00", want: domain.TierRed},
		{name: "overrun stays red", percent: "137.50", want: domain.TierRed},
		{name: "negative percent is green", percent: "-10", want: domain.TierGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, err := decimal.NewFromString(tt.percent)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, domain.TierForPercent(percent))
		})
	}
}

func TestTierPriorityOrdering(t *testing.T) {
	assert.Greater(t, domain.TierRed.Priority(), domain.TierOrange.Priority())
	assert.Greater(t, domain.TierOrange.Priority(), domain.TierYellow.Priority())
	assert.Greater(t, domain.TierYellow.Priority(), domain.TierGreen.Priority())
}
