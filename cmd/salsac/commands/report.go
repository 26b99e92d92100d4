package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"salsac-engine/internal/engine"
	"salsac-engine/internal/model"
	"salsac-engine/internal/report"
	"salsac-engine/internal/schedule"
)

func reportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the schedule as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			regime, err := loadRegime()
			if err != nil {
				return err
			}
			resp := engine.Process(request(cmd), regime)
			res := resp.CalculationResult
			if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
				printMessages(cmd.ErrOrStderr(), res.Messages)
				return errNoSchedule
			}

			sched := &schedule.Schedule{Months: res.Schedule, Summary: *res.Summary}
			pdf, err := report.GenerateSchedulePDF(regime, *res.Inputs, sched)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "salary-sacrifice-schedule.pdf", "output PDF path")
	return cmd
}
