package cmd

import (
	"github.com/iwvelando/loan-amortization/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal calculator",
	Long: `Tui opens a full-screen form.

Keys:
  tab, shift+tab, ↑, ↓   move between fields
  ←, →, space            switch between SAC and Price
  enter                  calculate the table
  ctrl+r                 clear the form
  pgup, pgdown           scroll the table
  esc, ctrl+c            quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := newCalculator(logger, 0)
		if err != nil {
			return err
		}
		return tui.Run(calc)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
