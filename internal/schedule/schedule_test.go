package schedule

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salsac-engine/internal/taxmodel"
)

const delta = 1e-6

func exampleInputs() ContributionInputs {
	return ContributionInputs{
		BaseYearlySalary:        75000,
		EmployerContributionPct: 0.05,
		EmployeeContributionPct: 0.05,
		TargetTotalContribution: 15000,
	}
}

func TestContributionInputs_Derived(t *testing.T) {
	c := exampleInputs()

	assert.InDelta(t, 3750, c.EmployerContribution(), delta)
	assert.InDelta(t, 3750, c.EmployeeContribution(), delta)
	assert.InDelta(t, 7500, c.MinTotalContribution(), delta)
	assert.InDelta(t, 7500, c.VoluntaryContributions(), delta)
	assert.InDelta(t, 0.15, c.TotalEmployeeContributionPct(), delta)
	assert.InDelta(t, 6250, c.BaseMonthlySalary(), delta)
	assert.InDelta(t, 312.5, c.RequiredSalarySacrificeMonthly(), delta)

	assert.InDelta(t, 7500, c.WithDefaultTarget().TargetTotalContribution, delta)
	assert.Zero(t, ContributionInputs{}.TotalEmployeeContributionPct())
}

func TestBuild_EndToEndExample(t *testing.T) {
	regime := taxmodel.DefaultRegime()

	s, err := Build(exampleInputs(), regime)
	require.NoError(t, err)
	require.Len(t, s.Months, 12)

	// Headroom is 6250 - 312.5 - 1859 = 4078.5 each month.
	assert.Equal(t, "April", s.Months[0].Month)
	assert.InDelta(t, 4078.5, s.Months[0].VoluntarySalarySacrifice, delta)
	assert.InDelta(t, 1859, s.Months[0].RevisedGrossSalary, delta)
	assert.Equal(t, "May", s.Months[1].Month)
	assert.InDelta(t, 3421.5, s.Months[1].VoluntarySalarySacrifice, delta)
	assert.InDelta(t, 2516, s.Months[1].RevisedGrossSalary, delta)
	for _, m := range s.Months[2:] {
		assert.Zero(t, m.VoluntarySalarySacrifice, m.Month)
		assert.InDelta(t, 5937.5, m.RevisedGrossSalary, delta, m.Month)
	}
	assert.Equal(t, "March", s.Months[11].Month)

	assert.InDelta(t, (4078.5+312.5)/6250, s.Months[0].RequiredTotalEmployeeContributionPct, delta)
	assert.InDelta(t, 0.05, s.Months[11].RequiredTotalEmployeeContributionPct, delta)

	assert.InDelta(t, 64.92, s.Months[0].NationalInsurance, delta)
	assert.InDelta(t, 117.48, s.Months[1].NationalInsurance, delta)
	assert.InDelta(t, 286.3, s.Months[2].NationalInsurance, delta)

	assert.InDelta(t, 3045.4, s.Summary.TotalOptimalNI, delta)
	assert.InDelta(t, 3285.6, s.Summary.TotalSuboptimalNI, delta)
	assert.InDelta(t, 240.2, s.Summary.NISaving, delta)
	assert.Less(t, s.Summary.TotalOptimalNI, s.Summary.TotalSuboptimalNI)

	assert.InDelta(t, 63750, s.Months[11].ProjectedYearlyIncome, delta)
	assert.InDelta(t, 12932, s.Summary.TotalOptimalIncomeTax, delta)
}

func TestBuild_RejectsBelowMinimumWage(t *testing.T) {
	regime := taxmodel.DefaultRegime()
	c := ContributionInputs{BaseYearlySalary: 20000, TargetTotalContribution: 20000}

	s, err := Build(c, regime)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrBelowMinimumWage)

	var mwErr *MinimumWageError
	require.True(t, errors.As(err, &mwErr))
	assert.InDelta(t, 22308, mwErr.MinWageYearly, delta)
	assert.InDelta(t, 20000-22308, mwErr.MaxSacrifice, delta)
}

func TestCheckMinimumWage_Boundary(t *testing.T) {
	regime := taxmodel.DefaultRegime()
	c := ContributionInputs{BaseYearlySalary: 30000, TargetTotalContribution: 30000 - 22308}
	assert.NoError(t, CheckMinimumWage(c, regime))

	c.TargetTotalContribution += 0.01
	assert.ErrorIs(t, CheckMinimumWage(c, regime), ErrBelowMinimumWage)
}

func TestBuild_NoVoluntaryContribution(t *testing.T) {
	regime := taxmodel.DefaultRegime()
	c := exampleInputs().WithDefaultTarget()

	s, err := Build(c, regime)
	require.NoError(t, err)
	for _, m := range s.Months {
		assert.Zero(t, m.VoluntarySalarySacrifice, m.Month)
		assert.InDelta(t, 5937.5, m.RevisedGrossSalary, delta)
	}
	// A flat year is charged the same NI either way.
	assert.InDelta(t, 0, s.Summary.NISaving, delta)
}

func TestAllocate_NegativeVoluntaryIsPassThrough(t *testing.T) {
	regime := taxmodel.DefaultRegime()
	c := exampleInputs()
	c.TargetTotalContribution = 5000

	for _, m := range Allocate(c, regime) {
		assert.Zero(t, m.VoluntarySalarySacrifice, m.Month)
	}
}

func TestNationalInsurance_DependsOnlyOnOwnMonth(t *testing.T) {
	regime := taxmodel.DefaultRegime()

	front := Allocate(exampleInputs(), regime)
	flat := Allocate(exampleInputs().WithDefaultTarget(), regime)

	// March pay is identical in both runs even though April and May differ.
	require.InDelta(t, front[11].RevisedGrossSalary, flat[11].RevisedGrossSalary, delta)
	assert.InDelta(t, front[11].NationalInsurance, flat[11].NationalInsurance, delta)

	for _, m := range front {
		assert.InDelta(t, regime.MonthlyNationalInsurance(m.RevisedGrossSalary), m.NationalInsurance, delta)
	}
}

func TestNationalInsurance_UnchangedByPermutingOtherMonths(t *testing.T) {
	regime := taxmodel.DefaultRegime()
	months := Allocate(exampleInputs(), regime)

	gross := make([]float64, len(months))
	for i, m := range months {
		gross[i] = m.RevisedGrossSalary
	}

	swaps := [][2]int{{0, 5}, {1, 11}, {0, 2}, {3, 9}}
	for _, sw := range swaps {
		permuted := append([]float64(nil), gross...)
		permuted[sw[0]], permuted[sw[1]] = permuted[sw[1]], permuted[sw[0]]

		for k := range permuted {
			src := k
			switch k {
			case sw[0]:
				src = sw[1]
			case sw[1]:
				src = sw[0]
			}
			assert.InDelta(t, months[src].NationalInsurance, regime.MonthlyNationalInsurance(permuted[k]), delta,
				"month %d after swapping %d and %d", k, sw[0], sw[1])
		}
	}
}

// randomInputs draws inputs from the domain the engine accepts.
func randomInputs(rng *rand.Rand, minWage float64) (ContributionInputs, bool) {
	c := ContributionInputs{
		BaseYearlySalary:        minWage + rng.Float64()*(100000-minWage),
		EmployerContributionPct: rng.Float64() * 0.2,
		EmployeeContributionPct: rng.Float64() * 0.2,
	}
	maxTarget := c.BaseYearlySalary - minWage
	if c.MinTotalContribution() > maxTarget {
		return c, false
	}
	c.TargetTotalContribution = c.MinTotalContribution() + rng.Float64()*(maxTarget-c.MinTotalContribution())
	return c, true
}

func TestAllocate_Properties(t *testing.T) {
	regime := taxmodel.DefaultRegime()
	rng := rand.New(rand.NewSource(42))

	checked := 0
	for checked < 500 {
		c, ok := randomInputs(rng, regime.MinWageYearly())
		if !ok {
			continue
		}
		checked++

		s, err := Build(c, regime)
		require.NoError(t, err, "%+v", c)

		headroom := c.BaseMonthlySalary() - c.RequiredSalarySacrificeMonthly() - regime.MinWageMonthly()
		var allocated, taxSum float64
		seenZero := false
		for i, m := range s.Months {
			allocated += m.VoluntarySalarySacrifice
			taxSum += m.IncomeTax

			require.GreaterOrEqual(t, m.RevisedGrossSalary, regime.MinWageMonthly()-delta, "floor %+v", c)
			require.LessOrEqual(t, m.VoluntarySalarySacrifice, headroom+delta, "headroom %+v", c)
			require.GreaterOrEqual(t, m.VoluntarySalarySacrifice, 0.0)
			if i > 0 {
				require.LessOrEqual(t, m.VoluntarySalarySacrifice, s.Months[i-1].VoluntarySalarySacrifice+delta, "front-loading %+v", c)
			}
			if seenZero {
				require.Zero(t, m.VoluntarySalarySacrifice, "stays zero %+v", c)
			}
			seenZero = seenZero || m.VoluntarySalarySacrifice == 0
		}

		require.InDelta(t, c.VoluntaryContributions(), allocated, 1e-4, "conservation %+v", c)
		require.InDelta(t, regime.AnnualIncomeTax(s.Months[11].ProjectedYearlyIncome), taxSum, 1e-4, "reconciliation %+v", c)
		require.LessOrEqual(t, s.Summary.TotalOptimalNI, s.Summary.TotalSuboptimalNI+1e-4, "saving %+v", c)
	}
}

func TestCheckMinimumWage_RejectsNaN(t *testing.T) {
	c := exampleInputs()
	c.TargetTotalContribution = math.NaN()

	err := CheckMinimumWage(c, taxmodel.DefaultRegime())
	assert.ErrorIs(t, err, ErrBelowMinimumWage)
}
