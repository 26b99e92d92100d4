package schedule

import "salsac-engine/internal/taxmodel"

// Summary compares the front-loaded schedule with a flat contribution rate.
type Summary struct {
	TotalOptimalIncomeTax float64 `json:"total_optimal_income_tax"`
	TotalOptimalNI        float64 `json:"total_optimal_ni"`
	TotalSuboptimalNI     float64 `json:"total_suboptimal_ni"`
	NISaving              float64 `json:"ni_saving"`
}

// Summarize totals the schedule and sets it against the NI due had the
// blended contribution percentage been sacrificed evenly all year. The flat
// figure is a single annual banded evaluation of the reduced salary.
func Summarize(c ContributionInputs, regime taxmodel.Regime, months []MonthRecord) Summary {
	var s Summary
	for _, m := range months {
		s.TotalOptimalIncomeTax += m.IncomeTax
		s.TotalOptimalNI += m.NationalInsurance
	}

	flatGross := c.BaseYearlySalary - c.VoluntaryContributions() - c.EmployeeContribution()
	s.TotalSuboptimalNI = regime.AnnualNationalInsurance(flatGross)
	s.NISaving = s.TotalSuboptimalNI - s.TotalOptimalNI
	return s
}
