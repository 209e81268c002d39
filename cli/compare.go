package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rental-yield/config"
	"rental-yield/report"
	"rental-yield/service"
)

func CompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank repayment schemes for a financed scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioPath, _ := cmd.Flags().GetString("scenario")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			input, err := config.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			projections, err := newProjectionService(cmd, cfg, nil)
			if err != nil {
				return err
			}

			result, err := service.NewSchemeComparisonService(projections).
				Compare(cmd.Context(), input, cfg.Engine.DefaultTermYears)
			if err != nil {
				return err
			}

			symbol := cfg.Report.CurrencySymbol
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Scheme\tCumulative 30y\tTotal interest\tROE year 1\tDebt year 30\t")
			for _, o := range result.Outcomes {
				if o.Error != "" {
					fmt.Fprintf(tw, "%s\tfailed: %s\t\t\t\t\n", o.Scheme, o.Error)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", o.Scheme,
					report.FormatCurrency(o.CumulativeCashFlow, symbol),
					report.FormatCurrency(o.TotalInterest, symbol),
					report.FormatPercent(o.CashOnCash),
					report.FormatCurrency(o.FinalDebt, symbol))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nRecommended: %s\n", result.Recommended)
			return nil
		},
	}

	cmd.Flags().String("scenario", "", "scenario YAML file")
	cmd.Flags().String("fidelity", "", "annuity fidelity: exact or approximate")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}
