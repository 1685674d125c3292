package dto

import (
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AvailabilityResponse is the availability view of one partida.
type AvailabilityResponse struct {
	PartidaCode     string          `json:"partidaCode"`
	Name            string          `json:"name"`
	Direction       string          `json:"direction"`
	Allocated       decimal.Decimal `json:"allocated"`
	Executed        decimal.Decimal `json:"executed"`
	Available       decimal.Decimal `json:"available"`
	PercentExecuted decimal.Decimal `json:"percentExecuted"`
	Tier            string          `json:"tier"`
}

// ToAvailabilityResponse maps a domain availability view to its response DTO.
func ToAvailabilityResponse(v *domain.AvailabilityView) AvailabilityResponse {
	return AvailabilityResponse{
		PartidaCode:     v.PartidaCode,
		Name:            v.Name,
		Direction:       string(v.Direction),
		Allocated:       v.Allocated,
		Executed:        v.Executed,
		Available:       v.Available,
		PercentExecuted: v.PercentExecuted,
		Tier:            string(v.Tier),
	}
}

// CandidateLine is one line of a voucher that has not been persisted yet.
type CandidateLine struct {
	PartidaCode string          `json:"partidaCode" binding:"required,partida_code"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ValidateVoucherRequest asks for an advisory budget check of candidate lines.
type ValidateVoucherRequest struct {
	CompanyID string          `json:"companyID" binding:"required"`
	ProjectID string          `json:"projectID" binding:"required"`
	Lines     []CandidateLine `json:"lines" binding:"required,min=1,dive"`
}

// LineValidation is the per-line result of an advisory budget check.
type LineValidation struct {
	PartidaCode      string          `json:"partidaCode"`
	Name             string          `json:"name"`
	Allocated        decimal.Decimal `json:"allocated"`
	Executed         decimal.Decimal `json:"executed"`
	Available        decimal.Decimal `json:"available"`
	RequestedAmount  decimal.Decimal `json:"requestedAmount"`
	ProjectedPercent decimal.Decimal `json:"projectedPercent"`
	Tier             string          `json:"tier"`
	Exceeded         bool            `json:"exceeded"`
}

// ValidationResponse is the outcome of an advisory budget check. Valid is
// always true: budget overrun is reported through ErrorMessage, never
// enforced.
type ValidationResponse struct {
	Valid        bool             `json:"valid"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	Lines        []LineValidation `json:"lineDetails"`
	Alerts       []AlertResponse  `json:"alerts"`
}

// AlertResponse is one budget alert.
type AlertResponse struct {
	AlertID         string          `json:"alertID"`
	Severity        string          `json:"severity"`
	Tier            string          `json:"tier"`
	Message         string          `json:"message"`
	PartidaCode     string          `json:"partidaCode"`
	PercentExecuted decimal.Decimal `json:"percentExecuted"`
	Allocated       decimal.Decimal `json:"allocated"`
	Executed        decimal.Decimal `json:"executed"`
	Available       decimal.Decimal `json:"available"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// ToAlertResponse maps a domain alert to its response DTO.
func ToAlertResponse(a domain.Alert) AlertResponse {
	return AlertResponse{
		AlertID:         a.AlertID,
		Severity:        a.Severity,
		Tier:            string(a.Tier),
		Message:         a.Message,
		PartidaCode:     a.PartidaCode,
		PercentExecuted: a.PercentExecuted,
		Allocated:       a.Allocated,
		Executed:        a.Executed,
		Available:       a.Available,
		GeneratedAt:     a.GeneratedAt,
	}
}

// ToAlertResponses maps a slice of domain alerts.
func ToAlertResponses(alerts []domain.Alert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = ToAlertResponse(a)
	}
	return out
}
