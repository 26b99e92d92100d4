package schedule

import (
	"math"

	"salsac-engine/internal/taxmodel"
)

// Months of the UK tax year in pay order.
var Months = [monthsPerYear]string{
	"April", "May", "June", "July", "August", "September",
	"October", "November", "December", "January", "February", "March",
}

// MonthRecord is one fully computed row of the schedule.
type MonthRecord struct {
	Month                                string  `json:"month"`
	GrossBaseSalary                      float64 `json:"gross_base_salary"`
	MinimumWage                          float64 `json:"minimum_wage"`
	RequiredSalarySacrifice              float64 `json:"required_salary_sacrifice"`
	VoluntarySalarySacrifice             float64 `json:"voluntary_salary_sacrifice"`
	RequiredTotalEmployeeContributionPct float64 `json:"required_total_employee_contribution_pct"`
	RevisedGrossSalary                   float64 `json:"revised_gross_salary"`
	ProjectedYearlyIncome                float64 `json:"projected_yearly_income"`
	IncomeTax                            float64 `json:"income_tax"`
	NationalInsurance                    float64 `json:"national_insurance"`
}

// Schedule is the twelve-month plan plus its totals.
type Schedule struct {
	Months  []MonthRecord `json:"months"`
	Summary Summary       `json:"summary"`
}

// monthInputs are constant for every month of a run.
type monthInputs struct {
	baseMonthly     float64
	requiredMonthly float64
	minWageMonthly  float64
}

// accumulator carries the running totals between months.
type accumulator struct {
	remainingVoluntary float64
	runningIncome      float64
	chargedTax         float64
}

// Build checks the minimum-wage precondition and, if it holds, allocates
// the voluntary contribution across the year. No schedule is produced when
// the precondition fails.
func Build(c ContributionInputs, regime taxmodel.Regime) (*Schedule, error) {
	if err := CheckMinimumWage(c, regime); err != nil {
		return nil, err
	}
	months := Allocate(c, regime)
	return &Schedule{
		Months:  months,
		Summary: Summarize(c, regime, months),
	}, nil
}

// Allocate runs the forward pass over April..March, taking the largest
// sacrifice the minimum wage allows each month until the voluntary pool is
// spent. Callers are expected to have checked CheckMinimumWage.
func Allocate(c ContributionInputs, regime taxmodel.Regime) []MonthRecord {
	in := monthInputs{
		baseMonthly:     c.BaseMonthlySalary(),
		requiredMonthly: c.RequiredSalarySacrificeMonthly(),
		minWageMonthly:  regime.MinWageMonthly(),
	}
	acc := accumulator{remainingVoluntary: c.VoluntaryContributions()}

	records := make([]MonthRecord, 0, monthsPerYear)
	for i := 0; i < monthsPerYear; i++ {
		var rec MonthRecord
		rec, acc = step(regime, i, acc, in)
		records = append(records, rec)
	}
	return records
}

// step computes month i from the totals of the months before it.
func step(regime taxmodel.Regime, i int, acc accumulator, in monthInputs) (MonthRecord, accumulator) {
	headroom := in.baseMonthly - in.requiredMonthly - in.minWageMonthly
	voluntary := math.Max(0, math.Min(headroom, acc.remainingVoluntary))

	revisedGross := in.baseMonthly - in.requiredMonthly - voluntary
	projected := acc.runningIncome + revisedGross*float64(monthsPerYear-i)
	incomeTax, chargedTax := regime.IncomeTaxEquivalent(i, projected, acc.chargedTax)

	var contributionPct float64
	if in.baseMonthly != 0 {
		contributionPct = (voluntary + in.requiredMonthly) / in.baseMonthly
	}

	rec := MonthRecord{
		Month:                                Months[i],
		GrossBaseSalary:                      in.baseMonthly,
		MinimumWage:                          in.minWageMonthly,
		RequiredSalarySacrifice:              in.requiredMonthly,
		VoluntarySalarySacrifice:             voluntary,
		RequiredTotalEmployeeContributionPct: contributionPct,
		RevisedGrossSalary:                   revisedGross,
		ProjectedYearlyIncome:                projected,
		IncomeTax:                            incomeTax,
		NationalInsurance:                    regime.MonthlyNationalInsurance(revisedGross),
	}
	next := accumulator{
		remainingVoluntary: acc.remainingVoluntary - voluntary,
		runningIncome:      acc.runningIncome + revisedGross,
		chargedTax:         chargedTax,
	}
	return rec, next
}
