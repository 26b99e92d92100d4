package engine

import (
	"fmt"

	"salsac-engine/internal/model"
	"salsac-engine/internal/schedule"
)

// contributionInputs converts user-facing percentages to fractions and
// fills in the default target.
func contributionInputs(in model.Inputs) schedule.ContributionInputs {
	c := schedule.ContributionInputs{
		BaseYearlySalary:        in.BaseYearlySalary,
		EmployerContributionPct: in.EmployerContributionPercent / 100,
		EmployeeContributionPct: in.EmployeeContributionPercent / 100,
	}
	if in.TargetTotalContribution == nil {
		return c.WithDefaultTarget()
	}
	c.TargetTotalContribution = *in.TargetTotalContribution
	return c
}

// validateInputs checks the ranges a user may enter. Every violation is
// reported, not just the first.
func validateInputs(in model.Inputs, c schedule.ContributionInputs) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	if !inRange(in.BaseYearlySalary, 0, model.MaxBaseYearlySalary) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidSalary,
			Message: fmt.Sprintf("Base yearly salary must be between 0 and %.0f", model.MaxBaseYearlySalary),
		})
	}

	if !inRange(in.EmployerContributionPercent, 0, model.MaxPercent) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidEmployerPercent,
			Message: "Employer contribution percentage must be between 0 and 100",
		})
	}

	if !inRange(in.EmployeeContributionPercent, 0, model.MaxPercent) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidEmployeePercent,
			Message: "Employee contribution percentage must be between 0 and 100",
		})
	}

	if len(msgs) > 0 {
		return msgs
	}

	if !(c.TargetTotalContribution >= c.MinTotalContribution()) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeTargetBelowMinimum,
			Message: fmt.Sprintf("Target total contribution %.2f is below the current total contribution %.2f", c.TargetTotalContribution, c.MinTotalContribution()),
		})
	}

	if !(c.TargetTotalContribution <= c.BaseYearlySalary) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeTargetAboveSalary,
			Message: fmt.Sprintf("Target total contribution %.2f exceeds the base yearly salary %.2f", c.TargetTotalContribution, c.BaseYearlySalary),
		})
	}

	return msgs
}

// inRange is false for NaN as well as for values outside [lo, hi].
func inRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}
