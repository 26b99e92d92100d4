package taxmodel

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_regime.yaml
var defaultRegimeYAML []byte

const monthsPerYear = 12

// DefaultTaxYear is the tax year of the embedded regime.
const DefaultTaxYear = "2024-25"

// BandRates holds the basic and higher band rates for one levy.
type BandRates struct {
	BasicRate  float64 `yaml:"basic_rate" json:"basic_rate"`
	HigherRate float64 `yaml:"higher_rate" json:"higher_rate"`
}

// Thresholds are the annual band boundaries shared by income tax and NI.
type Thresholds struct {
	Basic  float64 `yaml:"basic" json:"basic"`
	Higher float64 `yaml:"higher" json:"higher"`
}

// MinimumWage describes the statutory floor a salary sacrifice may not breach.
type MinimumWage struct {
	Hourly       float64 `yaml:"hourly" json:"hourly"`
	HoursPerWeek float64 `yaml:"hours_per_week" json:"hours_per_week"`
	WeeksPerYear float64 `yaml:"weeks_per_year" json:"weeks_per_year"`
}

// Regime is the immutable set of rates and thresholds for one tax year.
type Regime struct {
	TaxYear           string      `yaml:"tax_year" json:"tax_year"`
	IncomeTax         BandRates   `yaml:"income_tax" json:"income_tax"`
	NationalInsurance BandRates   `yaml:"national_insurance" json:"national_insurance"`
	Thresholds        Thresholds  `yaml:"thresholds" json:"thresholds"`
	MinimumWage       MinimumWage `yaml:"minimum_wage" json:"minimum_wage"`
}

var errNegative = errors.New("must not be negative")

// Validate checks the regime invariants: nothing negative and the higher
// threshold strictly above the basic one.
func (r Regime) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"income_tax.basic_rate", r.IncomeTax.BasicRate},
		{"income_tax.higher_rate", r.IncomeTax.HigherRate},
		{"national_insurance.basic_rate", r.NationalInsurance.BasicRate},
		{"national_insurance.higher_rate", r.NationalInsurance.HigherRate},
		{"thresholds.basic", r.Thresholds.Basic},
		{"thresholds.higher", r.Thresholds.Higher},
		{"minimum_wage.hourly", r.MinimumWage.Hourly},
		{"minimum_wage.hours_per_week", r.MinimumWage.HoursPerWeek},
		{"minimum_wage.weeks_per_year", r.MinimumWage.WeeksPerYear},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("regime %s: %s %w", r.TaxYear, f.name, errNegative)
		}
	}
	if r.Thresholds.Higher <= r.Thresholds.Basic {
		return fmt.Errorf("regime %s: higher threshold %.2f must exceed basic threshold %.2f",
			r.TaxYear, r.Thresholds.Higher, r.Thresholds.Basic)
	}
	return nil
}

// MinWageYearly is the annual earnings at the minimum wage for a full-time week.
func (r Regime) MinWageYearly() float64 {
	return r.MinimumWage.Hourly * r.MinimumWage.HoursPerWeek * r.MinimumWage.WeeksPerYear
}

// MinWageMonthly is MinWageYearly spread evenly over twelve pay periods.
func (r Regime) MinWageMonthly() float64 {
	return r.MinWageYearly() / monthsPerYear
}

// ParseRegime decodes and validates a YAML regime document.
func ParseRegime(data []byte) (Regime, error) {
	var r Regime
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Regime{}, fmt.Errorf("parse regime: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Regime{}, err
	}
	return r, nil
}

// LoadRegime reads a regime from a YAML file.
func LoadRegime(path string) (Regime, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Regime{}, fmt.Errorf("read regime file: %w", err)
	}
	return ParseRegime(data)
}

// DefaultRegime returns the embedded 2024-25 regime.
func DefaultRegime() Regime {
	r, err := ParseRegime(defaultRegimeYAML)
	if err != nil {
		panic("embedded regime is invalid: " + err.Error())
	}
	return r
}
