package schedule

import (
	"errors"
	"fmt"

	"salsac-engine/internal/taxmodel"
)

const monthsPerYear = 12

// ErrBelowMinimumWage is returned when the target contribution would take
// pay below the minimum wage.
var ErrBelowMinimumWage = errors.New("salary sacrifice below minimum wage")

// MinimumWageError reports the figures a user needs to correct the target.
type MinimumWageError struct {
	MinWageYearly float64
	MaxSacrifice  float64
}

func (e *MinimumWageError) Error() string {
	return fmt.Sprintf("%s: minimum wage is %.2f a year, maximum sacrifice is %.2f",
		ErrBelowMinimumWage, e.MinWageYearly, e.MaxSacrifice)
}

func (e *MinimumWageError) Unwrap() error { return ErrBelowMinimumWage }

// ContributionInputs are the four figures a user supplies. Percentages are
// fractions in [0, 1].
type ContributionInputs struct {
	BaseYearlySalary        float64 `json:"base_yearly_salary"`
	EmployerContributionPct float64 `json:"employer_contribution_pct"`
	EmployeeContributionPct float64 `json:"employee_contribution_pct"`
	TargetTotalContribution float64 `json:"target_total_contribution"`
}

func (c ContributionInputs) EmployerContribution() float64 {
	return c.BaseYearlySalary * c.EmployerContributionPct
}

func (c ContributionInputs) EmployeeContribution() float64 {
	return c.BaseYearlySalary * c.EmployeeContributionPct
}

// MinTotalContribution is what the employer and employee pay with no
// voluntary sacrifice at all.
func (c ContributionInputs) MinTotalContribution() float64 {
	return c.EmployerContribution() + c.EmployeeContribution()
}

func (c ContributionInputs) VoluntaryContributions() float64 {
	return c.TargetTotalContribution - c.MinTotalContribution()
}

// TotalEmployeeContributionPct is the flat share of salary the employee would
// sacrifice if the target were spread evenly across the year.
func (c ContributionInputs) TotalEmployeeContributionPct() float64 {
	if c.BaseYearlySalary == 0 {
		return 0
	}
	return (c.VoluntaryContributions() + c.EmployeeContribution()) / c.BaseYearlySalary
}

func (c ContributionInputs) BaseMonthlySalary() float64 {
	return c.BaseYearlySalary / monthsPerYear
}

func (c ContributionInputs) RequiredSalarySacrificeMonthly() float64 {
	return c.EmployeeContribution() / monthsPerYear
}

// WithDefaultTarget returns a copy whose target is the minimum total
// contribution, the starting value offered to users.
func (c ContributionInputs) WithDefaultTarget() ContributionInputs {
	c.TargetTotalContribution = c.MinTotalContribution()
	return c
}

// CheckMinimumWage enforces that salary left after the target contribution
// stays at or above the annual minimum wage.
func CheckMinimumWage(c ContributionInputs, regime taxmodel.Regime) error {
	minWage := regime.MinWageYearly()
	if !(c.BaseYearlySalary-c.TargetTotalContribution >= minWage) {
		return &MinimumWageError{
			MinWageYearly: minWage,
			MaxSacrifice:  c.BaseYearlySalary - minWage,
		}
	}
	return nil
}
