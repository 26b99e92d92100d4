package model

// CalculationRequest asks for a salary-sacrifice schedule. Percentages are
// entered as the user sees them, 0 to 100.
type CalculationRequest struct {
	TenantID string `json:"tenant_id"`
	TaxYear  string `json:"tax_year,omitempty"`
	Inputs   Inputs `json:"inputs"`
}

type Inputs struct {
	BaseYearlySalary            float64  `json:"base_yearly_salary"`
	EmployerContributionPercent float64  `json:"employer_contribution_percent"`
	EmployeeContributionPercent float64  `json:"employee_contribution_percent"`
	TargetTotalContribution     *float64 `json:"target_total_contribution,omitempty"`
}

// Bound describes the accepted range of one input.
type Bound struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

type DefaultsResponse struct {
	TaxYear                     string `json:"tax_year"`
	BaseYearlySalary            Bound  `json:"base_yearly_salary"`
	EmployerContributionPercent Bound  `json:"employer_contribution_percent"`
	EmployeeContributionPercent Bound  `json:"employee_contribution_percent"`
	TargetTotalContribution     Bound  `json:"target_total_contribution"`
}

const (
	MaxBaseYearlySalary     = 100000.0
	DefaultBaseYearlySalary = 75000.0
	SalaryStep              = 1000.0
	MaxPercent              = 100.0
	DefaultPercent          = 5.0
	PercentStep             = 0.5
	TargetStep              = 100.0
)
