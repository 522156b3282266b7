package cmd

import (
	"fmt"

	"github.com/iwvelando/loan-amortization/internal/calculator"
	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/output"
	"github.com/iwvelando/loan-amortization/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print an amortization schedule",
	Long: `Schedule computes every period of a fixed-rate loan.

Amounts may be written with either decimal separator ("1.234,56" or
"1,234.56"); the rate is a percentage per period. When both separators
appear the last one is the decimal point. A lone separator that appears
once is also a decimal point, whatever the configured language, so
"1,234" and "1.234" both mean 1.234. Write 1234 or "1,234.00" for a
thousand.

Example:
  amortization schedule --principal 1000 --rate 1 --periods 2 --system price --output csv`,
	RunE: runSchedule,
}

var (
	schPrincipal string
	schRate      string
	schPeriods   string
	schSystem    string
	schOutput    string
	schChart     bool
)

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&schPrincipal, "principal", "p", "", "financed amount (required)")
	scheduleCmd.Flags().StringVarP(&schRate, "rate", "r", "", "interest rate per period in percent (required)")
	scheduleCmd.Flags().StringVarP(&schPeriods, "periods", "n", "", "number of periods (required)")
	scheduleCmd.Flags().StringVarP(&schSystem, "system", "s", "", "repayment system: sac or price (default from config)")
	scheduleCmd.Flags().StringVarP(&schOutput, "output", "o", "", "output format: pretty, csv or json (default from config)")
	scheduleCmd.Flags().BoolVar(&schChart, "chart", false, "plot closing balance and payment after a pretty table")

	_ = scheduleCmd.MarkFlagRequired("principal")
	_ = scheduleCmd.MarkFlagRequired("rate")
	_ = scheduleCmd.MarkFlagRequired("periods")

	_ = scheduleCmd.RegisterFlagCompletionFunc("system", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return systemNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = scheduleCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runSchedule(cmd *cobra.Command, args []string) error {
	outputFormat := conf.Output.Format
	if schOutput != "" {
		outputFormat = schOutput
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	system := schSystem
	if system == "" {
		system = conf.DefaultSystem().String()
	}

	calc, err := newCalculator(logger, 0)
	if err != nil {
		return err
	}

	view := calc.Submit(calculator.Form{
		Principal: schPrincipal,
		Rate:      schRate,
		Periods:   schPeriods,
		System:    system,
	})
	if view.State != calculator.Ready {
		return fmt.Errorf("%s (%w)", view.Message, view.Err)
	}

	renderer := output.NewRenderer(calc.Locale(), conf.Locale.CurrencySymbol)
	out := cmd.OutOrStdout()
	if err := renderer.Write(out, outputFormat, view.Request, *view.Result); err != nil {
		return err
	}

	if (schChart || conf.Output.Chart) && outputFormat == constants.OutputFormatPretty {
		fmt.Fprintln(out)
		if err := renderer.Chart(out, *view.Result); err != nil {
			return err
		}
	}

	logger.Debug("schedule printed",
		zap.String("op", "cmd.runSchedule"),
		zap.String("system", view.Request.System.String()),
		zap.Int("periods", view.Request.PeriodCount),
		zap.String("output", outputFormat),
	)
	return nil
}

// systemNames lists the accepted --system values.
func systemNames() []string {
	names := make([]string, len(amortization.Systems))
	for i, s := range amortization.Systems {
		names[i] = s.String()
	}
	return names
}
