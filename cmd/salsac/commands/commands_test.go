package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salsac-engine/internal/model"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScheduleCommand(t *testing.T) {
	out, _, err := run(t, "schedule", "--salary", "75000", "--employer", "5", "--employee", "5", "--target", "15000")
	require.NoError(t, err)

	assert.Contains(t, out, "Your current total pension contributions are £7,500.00 per year.")
	assert.Contains(t, out, "This is a saving of £240.20.")
	assert.Contains(t, out, "Voluntary Salary Sacrifice")
	assert.Contains(t, out, "April")
	assert.Contains(t, out, "£4,078.50")
	assert.Contains(t, out, "March")
}

func TestScheduleCommand_JSON(t *testing.T) {
	out, _, err := run(t, "schedule", "--json")
	require.NoError(t, err)

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	assert.Len(t, resp.CalculationResult.Schedule, 12)
	assert.Equal(t, 7500.0, resp.CalculationResult.Contributions.TargetTotalContribution)
}

func TestScheduleCommand_BelowMinimumWage(t *testing.T) {
	out, errOut, err := run(t, "schedule", "--salary", "20000", "--employer", "0", "--employee", "0", "--target", "20000")
	require.ErrorIs(t, err, errNoSchedule)

	assert.Contains(t, errOut, "BELOW_MINIMUM_WAGE")
	assert.Contains(t, errOut, "£22,308.00")
	assert.NotContains(t, out, "April")
}

func TestScheduleCommand_NaNTarget(t *testing.T) {
	out, errOut, err := run(t, "schedule", "--target", "NaN")
	require.ErrorIs(t, err, errNoSchedule)

	assert.Contains(t, errOut, "TARGET_BELOW_MINIMUM")
	assert.Contains(t, errOut, "TARGET_ABOVE_SALARY")
	assert.NotContains(t, out, "April")
}

func TestScheduleCommand_NaNEmployerPercent(t *testing.T) {
	_, errOut, err := run(t, "schedule", "--employer", "NaN")
	require.ErrorIs(t, err, errNoSchedule)
	assert.Contains(t, errOut, "INVALID_EMPLOYER_PERCENT")
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	out, _, err := run(t, "report", "--target", "15000", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestScheduleCommand_RegimeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regime.yaml")
	doc := `tax_year: "2025-26"
income_tax: {basic_rate: 0.2, higher_rate: 0.4}
national_insurance: {basic_rate: 0.08, higher_rate: 0.02}
thresholds: {basic: 12570, higher: 50270}
minimum_wage: {hourly: 12.21, hours_per_week: 37.5, weeks_per_year: 52}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := run(t, "--regime", path, "schedule", "--json")
	require.NoError(t, err)

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "2025-26", resp.CalculationMetadata.TaxYear)
	assert.InDelta(t, 12.21*37.5*52/12, resp.CalculationResult.Schedule[0].MinimumWage, 1e-6)
}
