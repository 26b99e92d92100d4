package taxmodel

import "math"

// BandedCharge applies the two-band shape shared by income tax and NI.
// Income above the higher threshold is charged at the higher rate; income
// between the thresholds at the basic rate. Nothing is due at or below the
// basic threshold.
func BandedCharge(income, basicRate, higherRate, basicThreshold, higherThreshold float64) float64 {
	higherExcess := math.Max(0, income-higherThreshold)
	basicExcess := math.Max(0, income-higherExcess-basicThreshold)
	return higherExcess*higherRate + basicExcess*basicRate
}

// AnnualIncomeTax is the annual income tax on income.
func (r Regime) AnnualIncomeTax(income float64) float64 {
	return BandedCharge(income, r.IncomeTax.BasicRate, r.IncomeTax.HigherRate,
		r.Thresholds.Basic, r.Thresholds.Higher)
}

// AnnualNationalInsurance is the annual NI on income, evaluated as a single figure.
func (r Regime) AnnualNationalInsurance(income float64) float64 {
	return BandedCharge(income, r.NationalInsurance.BasicRate, r.NationalInsurance.HigherRate,
		r.Thresholds.Basic, r.Thresholds.Higher)
}

// IncomeTaxEquivalent charges this month's share of the tax still owed on
// the projected annual income, PAYE style. The outstanding amount is spread
// over the months left in the year (monthIndex 0 is April), so over- and
// under-charges correct themselves by March. It returns the charge for the
// month and the cumulative tax charged so far.
func (r Regime) IncomeTaxEquivalent(monthIndex int, projectedAnnualIncome, priorChargedTax float64) (float64, float64) {
	remaining := r.AnnualIncomeTax(projectedAnnualIncome) - priorChargedTax
	thisMonth := remaining / float64(monthsPerYear-monthIndex)
	return thisMonth, priorChargedTax + thisMonth
}

// MonthlyNationalInsurance charges NI on a single month's pay as if it were
// earned all year. There is no running total: each month stands alone.
func (r Regime) MonthlyNationalInsurance(actualMonthlyGross float64) float64 {
	return r.AnnualNationalInsurance(actualMonthlyGross*monthsPerYear) / monthsPerYear
}
