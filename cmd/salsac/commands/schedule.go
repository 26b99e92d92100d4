package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"salsac-engine/internal/engine"
	"salsac-engine/internal/model"
	"salsac-engine/internal/present"
)

var errNoSchedule = errors.New("no schedule produced")

func scheduleCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month salary sacrifice schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			regime, err := loadRegime()
			if err != nil {
				return err
			}
			resp := engine.Process(request(cmd), regime)
			out := cmd.OutOrStdout()

			if asJSON {
				b, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			} else {
				printMessages(cmd.ErrOrStderr(), resp.CalculationResult.Messages)
				if resp.CalculationMetadata.CalculationOutcome == model.OutcomeSuccess {
					printSchedule(out, resp.CalculationResult)
				}
			}

			if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
				return errNoSchedule
			}
			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full calculation response as JSON")
	return cmd
}

func printMessages(w io.Writer, msgs []model.CalculationMessage) {
	for _, m := range msgs {
		fmt.Fprintf(w, "%s %s: %s\n", m.Level, m.Code, m.Message)
	}
}

func printSchedule(w io.Writer, res model.CalculationResult) {
	for _, line := range res.Narrative {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(present.Columns, "\t")+"\t")
	for _, row := range present.Rows(res.Schedule) {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	tw.Flush()
}
