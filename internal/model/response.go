package model

import "salsac-engine/internal/schedule"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	TaxYear                string `json:"tax_year"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

// CalculationResult carries the schedule only when the outcome is SUCCESS.
type CalculationResult struct {
	Messages      []CalculationMessage         `json:"messages"`
	Contributions *Contributions               `json:"contributions,omitempty"`
	Schedule      []schedule.MonthRecord       `json:"schedule,omitempty"`
	Summary       *schedule.Summary            `json:"summary,omitempty"`
	Narrative     []string                     `json:"narrative,omitempty"`
	Inputs        *schedule.ContributionInputs `json:"inputs,omitempty"`
}

// Contributions are the yearly figures derived from the inputs.
type Contributions struct {
	EmployerContribution         float64 `json:"employer_contribution"`
	EmployeeContribution         float64 `json:"employee_contribution"`
	MinTotalContribution         float64 `json:"min_total_contribution"`
	TargetTotalContribution      float64 `json:"target_total_contribution"`
	VoluntaryContributions       float64 `json:"voluntary_contributions"`
	TotalEmployeeContributionPct float64 `json:"total_employee_contribution_pct"`
}

type ErrorResponse struct {
	Status   int                  `json:"status"`
	Message  string               `json:"message"`
	Messages []CalculationMessage `json:"messages,omitempty"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
