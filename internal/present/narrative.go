package present

import (
	"fmt"

	"salsac-engine/internal/schedule"
	"salsac-engine/internal/taxmodel"
)

// Columns are the schedule table headings in display order.
var Columns = []string{
	"Month",
	"Gross Base Salary",
	"Minimum Wage",
	"Required Salary Sacrifice",
	"Voluntary Salary Sacrifice",
	"Required Total Employee Pension Contribution",
	"Revised Gross Salary",
	"Projected Yearly Income",
	"Income Tax",
	"National Insurance",
}

// Rows formats each month as one table row matching Columns.
func Rows(months []schedule.MonthRecord) [][]string {
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			m.Month,
			Money(m.GrossBaseSalary),
			Money(m.MinimumWage),
			Money(m.RequiredSalarySacrifice),
			Money(m.VoluntarySalarySacrifice),
			Percent(m.RequiredTotalEmployeeContributionPct),
			Money(m.RevisedGrossSalary),
			Money(m.ProjectedYearlyIncome),
			Money(m.IncomeTax),
			Money(m.NationalInsurance),
		})
	}
	return rows
}

// Narrative is the summary shown above the schedule, one paragraph per entry.
func Narrative(c schedule.ContributionInputs, s schedule.Summary) []string {
	lines := []string{
		fmt.Sprintf("Your current total pension contributions are %s per year.", Money(c.MinTotalContribution())),
	}

	if voluntary := c.VoluntaryContributions(); voluntary > 0 {
		lines = append(lines, fmt.Sprintf(
			"You will need to salary sacrifice an additional %s to meet your desired target of %s a year "+
				"(%s additional contributions, %s contributions to get the maximum employer contributions, "+
				"and %s employer contributions). This is a total %s employee contribution.",
			Money(voluntary), Money(c.TargetTotalContribution), Money(voluntary),
			Money(c.EmployeeContribution()), Money(c.EmployerContribution()),
			Percent(c.TotalEmployeeContributionPct())))
	}

	lines = append(lines,
		fmt.Sprintf("If you were to set your employee contributions to %s consistently throughout the year, "+
			"you would pay a total of %s NI per year. By optimising your contributions throughout the year, "+
			"you would instead pay a total of %s a year.",
			Percent(c.TotalEmployeeContributionPct()), Money(s.TotalSuboptimalNI), Money(s.TotalOptimalNI)),
		fmt.Sprintf("This is a saving of %s.", Money(s.NISaving)),
	)
	return lines
}

// MinimumWageMessage explains why no schedule could be produced.
func MinimumWageMessage(err *schedule.MinimumWageError) string {
	return fmt.Sprintf("You cannot salary sacrifice below minimum wage. Minimum wage is currently %s. "+
		"The maximum you can salary sacrifice is %s.", Money(err.MinWageYearly), Money(err.MaxSacrifice))
}

// Explainer describes why re-timing contributions changes the NI bill.
func Explainer(r taxmodel.Regime) []string {
	return []string{
		"Because of how National Insurance (NI) is calculated, it is possible to reduce your NI " +
			"obligation simply by restructuring when you make your pension contributions.",
		"Income tax from employment is calculated in month by projecting your yearly income, and evenly " +
			"charging you tax based on the number of months remaining in the year. If you have over or " +
			"underpaid tax in any given tax year, this will be reconciled in future years.",
		"In contrast, NI is calculated in month for that month only, and is never reconciled. If you " +
			"overpay relative to your yearly earnings you cannot reclaim it, and if you underpay you will " +
			"not be charged.",
		fmt.Sprintf("By altering the timing of how much you salary sacrifice into your pension, you can pay "+
			"a minimal amount of NI at the Basic Rate Tax band rate (%s), and as much as possible at the "+
			"lower Higher Rate Tax band rate (%s).",
			WholePercent(r.NationalInsurance.BasicRate), WholePercent(r.NationalInsurance.HigherRate)),
		"Your employer will need to allow mid-year pension contribution changes for you to act on this schedule.",
	}
}
