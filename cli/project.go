package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rental-yield/config"
	"rental-yield/domain"
	"rental-yield/report"
)

func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the 30-year projection for a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioPath, _ := cmd.Flags().GetString("scenario")
			exportPath, _ := cmd.Flags().GetString("export")

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
			result, err := projections.Compute(cmd.Context(), input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printProjection(out, result, cfg.Report.CurrencySymbol); err != nil {
				return err
			}

			if exportPath != "" {
				if err := exportLedger(exportPath, result.Ledger, cfg.Report.SheetName); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nExported to %s\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().String("scenario", "", "scenario YAML file")
	cmd.Flags().String("export", "", "write the ledger to a .csv or .xlsx file")
	cmd.Flags().String("fidelity", "", "annuity fidelity: exact or approximate")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func printProjection(w io.Writer, result domain.ProjectionResult, symbol string) error {
	m := result.Metrics
	fmt.Fprintf(w, "BAR %s  NAR %s  ROE year 1 %s  Equity %s\n",
		report.FormatPercent(m.GrossYield),
		report.FormatPercent(m.NetYield),
		report.FormatPercent(m.CashOnCash),
		report.FormatCurrency(m.Equity, symbol))
	if m.EquityFallback {
		fmt.Fprintln(w, "(equity is not positive, ROE shows the gross yield)")
	}
	avg := result.MonthlyAverages
	fmt.Fprintf(w, "Monthly average: revenue %s  costs %s  cash flow %s\n\n",
		report.FormatCurrency(avg.Revenue, symbol),
		report.FormatCurrency(avg.TotalCosts, symbol),
		report.FormatCurrency(avg.NetCashFlow, symbol))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(report.Columns, "\t")+"\t")
	for _, row := range result.Ledger {
		fmt.Fprintln(tw, strings.Join(report.FormatRow(row, symbol), "\t")+"\t")
	}
	return tw.Flush()
}

func exportLedger(path string, ledger domain.Ledger, sheet string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = report.WriteXLSX(f, ledger, sheet)
	case ".csv":
		err = report.WriteCSV(f, ledger)
	default:
		return fmt.Errorf("unsupported export extension %q (use .csv or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("export ledger: %w", err)
	}
	return f.Close()
}
