package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"salsac-engine/internal/model"
	"salsac-engine/internal/present"
	"salsac-engine/internal/schedule"
	"salsac-engine/internal/taxmodel"
)

// Process validates the request and, unless a CRITICAL message is raised,
// builds the schedule, its summary and the narrative. A failed calculation
// carries messages only.
func Process(req *model.CalculationRequest, regime taxmodel.Regime) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	addMessage := func(msg model.CalculationMessage) {
		msg.ID = len(allMessages)
		allMessages = append(allMessages, msg)
	}

	inputs := contributionInputs(req.Inputs)
	for _, msg := range validateInputs(req.Inputs, inputs) {
		addMessage(msg)
	}

	var result model.CalculationResult
	outcome := model.OutcomeSuccess

	if len(allMessages) > 0 {
		outcome = model.OutcomeFailure
	} else {
		sched, err := schedule.Build(inputs, regime)
		if err != nil {
			addMessage(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeBelowMinimumWage,
				Message: failureMessage(err),
			})
			outcome = model.OutcomeFailure
		} else {
			if inputs.VoluntaryContributions() <= 0 {
				addMessage(model.CalculationMessage{
					Level:   model.LevelWarning,
					Code:    model.CodeNoVoluntaryContributions,
					Message: "Target equals the current total contribution; there is nothing to re-time",
				})
			}
			result = successResult(inputs, sched)
		}
	}

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	result.Messages = allMessages

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			TaxYear:                regime.TaxYear,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

func failureMessage(err error) string {
	var mwErr *schedule.MinimumWageError
	if errors.As(err, &mwErr) {
		return present.MinimumWageMessage(mwErr)
	}
	return err.Error()
}

func successResult(c schedule.ContributionInputs, sched *schedule.Schedule) model.CalculationResult {
	summary := sched.Summary
	return model.CalculationResult{
		Inputs: &c,
		Contributions: &model.Contributions{
			EmployerContribution:         c.EmployerContribution(),
			EmployeeContribution:         c.EmployeeContribution(),
			MinTotalContribution:         c.MinTotalContribution(),
			TargetTotalContribution:      c.TargetTotalContribution,
			VoluntaryContributions:       c.VoluntaryContributions(),
			TotalEmployeeContributionPct: c.TotalEmployeeContributionPct(),
		},
		Schedule:  sched.Months,
		Summary:   &summary,
		Narrative: present.Narrative(c, summary),
	}
}

// Defaults describes the inputs a form should offer, with the target
// defaulting to the current total contribution.
func Defaults(regime taxmodel.Regime) model.DefaultsResponse {
	c := contributionInputs(model.Inputs{
		BaseYearlySalary:            model.DefaultBaseYearlySalary,
		EmployerContributionPercent: model.DefaultPercent,
		EmployeeContributionPercent: model.DefaultPercent,
	})
	return model.DefaultsResponse{
		TaxYear: regime.TaxYear,
		BaseYearlySalary: model.Bound{
			Min: 0, Max: model.MaxBaseYearlySalary, Default: model.DefaultBaseYearlySalary, Step: model.SalaryStep,
		},
		EmployerContributionPercent: model.Bound{
			Min: 0, Max: model.MaxPercent, Default: model.DefaultPercent, Step: model.PercentStep,
		},
		EmployeeContributionPercent: model.Bound{
			Min: 0, Max: model.MaxPercent, Default: model.DefaultPercent, Step: model.PercentStep,
		},
		TargetTotalContribution: model.Bound{
			Min: c.MinTotalContribution(), Max: c.BaseYearlySalary, Default: c.TargetTotalContribution, Step: model.TargetStep,
		},
	}
}
