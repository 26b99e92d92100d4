package commands

import (
	"github.com/spf13/cobra"

	"salsac-engine/internal/model"
	"salsac-engine/internal/taxmodel"
)

var (
	regimeFile string

	salary   float64
	employer float64
	employee float64
	target   float64
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "salsac",
		Short:        "Plan pension salary sacrifice to minimise National Insurance",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&regimeFile, "regime", "", "YAML tax regime file (default: embedded 2024-25)")

	root.AddCommand(scheduleCmd(), reportCmd(), serveCmd())
	return root
}

// addInputFlags registers the four calculation inputs on cmd.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&salary, "salary", model.DefaultBaseYearlySalary, "base yearly salary (£)")
	cmd.Flags().Float64Var(&employer, "employer", model.DefaultPercent, "maximum employer contribution (%)")
	cmd.Flags().Float64Var(&employee, "employee", model.DefaultPercent, "employee contribution required for the maximum employer contribution (%)")
	cmd.Flags().Float64Var(&target, "target", 0, "desired total yearly contribution (£, default: current total)")
}

// request builds a calculation request from the input flags. The target is
// only sent when the flag was given.
func request(cmd *cobra.Command) *model.CalculationRequest {
	req := &model.CalculationRequest{
		Inputs: model.Inputs{
			BaseYearlySalary:            salary,
			EmployerContributionPercent: employer,
			EmployeeContributionPercent: employee,
		},
	}
	if cmd.Flags().Changed("target") {
		t := target
		req.Inputs.TargetTotalContribution = &t
	}
	return req
}

func loadRegime() (taxmodel.Regime, error) {
	if regimeFile == "" {
		return taxmodel.DefaultRegime(), nil
	}
	return taxmodel.LoadRegime(regimeFile)
}
