package cmd

import (
	"fmt"

	"github.com/iwvelando/loan-amortization/internal/calculator"
	"github.com/iwvelando/loan-amortization/internal/config"
	"github.com/iwvelando/loan-amortization/internal/logging"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/locale"
	"github.com/iwvelando/loan-amortization/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	envFile  string
	logLevel string

	conf   *config.Configuration
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "amortization",
	Short: "Loan amortization schedules under the SAC and Price systems",
	Long: `Amortization computes fixed-rate loan schedules period by period.

It provides:
  - schedule: print a schedule as a table, CSV or JSON, optionally with a chart
  - serve: an HTML calculator and a JSON API
  - tui: an interactive terminal calculator

Values are formatted for the configured locale (pt-BR by default).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file with AMORTIZATION_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// setup loads the configuration and builds the logger for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	c, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", cfgFile, err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration at %s: %w", cfgFile, err)
	}

	l, err := logging.New(c.Logging, logLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "{\"op\": \"cmd.setup\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return err
	}

	conf = c
	logger = l
	logger.Debug("configuration loaded",
		zap.String("op", "cmd.setup"),
		zap.String("config", cfgFile),
		zap.String("language", conf.Locale.Language),
	)
	return nil
}

// newCalculator wires the configured locale into a calculator.
func newCalculator(l *zap.Logger, maxPeriods int) (*calculator.Calculator, error) {
	loc, err := locale.New(conf.Locale.Language)
	if err != nil {
		return nil, err
	}
	return calculator.New(l, output.NewRenderer(loc, conf.Locale.CurrencySymbol),
		calculator.WithDefaultSystem(conf.DefaultSystem()),
		calculator.WithMaxPeriods(maxPeriods),
	), nil
}
