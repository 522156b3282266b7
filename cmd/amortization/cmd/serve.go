package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/loan-amortization/internal/config"
	"github.com/iwvelando/loan-amortization/internal/logging"
	"github.com/iwvelando/loan-amortization/internal/server"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML calculator and the JSON API",
	Long: `Serve starts an HTTP server with:
  GET  /              the calculator form
  POST /              calculate the submitted form
  POST /reset         clear the form
  POST /api/schedule  {"principal", "rate", "periods", "system"} as JSON
  GET  /api/version
  GET  /healthz

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

var (
	serverConfigFile string
	serveAddress     string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverConfigFile, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "listen address override, e.g. :8080")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(serverConfigFile)
	if err != nil {
		return err
	}
	if serveAddress != "" {
		cfg.Address = serveAddress
	}

	// The server's own logging section replaces the application one when set.
	serverLogger := logger
	if cfg.Logging != (config.LoggingConfig{}) {
		serverLogger, err = logging.New(cfg.Logging, logLevel)
		if err != nil {
			return err
		}
		defer func() {
			_ = serverLogger.Sync()
		}()
	}

	calc, err := newCalculator(serverLogger, cfg.MaxPeriods)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, serverLogger, cfg, server.NewHandler(serverLogger, calc, cfg.BodySizeBytes(), version), nil)
}
