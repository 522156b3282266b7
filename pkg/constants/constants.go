// Package constants provides shared constants for the loan-amortization application.
package constants

// Numerical tolerances
const (
	// Epsilon is the tolerance under which a closing balance is forced to
	// exactly zero by the amortization engine.
	Epsilon = 1e-10

	// DisplayTolerance is the magnitude under which a value is displayed as
	// zero, avoiding a "-0,00" artifact.
	DisplayTolerance = 1e-8

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Locale defaults
const (
	// DefaultLanguage is the BCP 47 tag used for messages and number formatting.
	DefaultLanguage = "pt-BR"

	// DefaultCurrencySymbol is prefixed to every displayed currency amount.
	DefaultCurrencySymbol = "R$"

	// DefaultSystem is the repayment system preselected in forms.
	DefaultSystem = "sac"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. AMORTIZATION_OUTPUT_FORMAT.
	EnvPrefix = "AMORTIZATION"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultReadTimeout and DefaultWriteTimeout are in seconds.
	DefaultReadTimeout  = 10
	DefaultWriteTimeout = 10

	// DefaultMaxPeriods caps the period count the server accepts (100 years
	// of monthly payments).
	DefaultMaxPeriods = 1200

	// ShutdownTimeout bounds graceful shutdown, in seconds.
	ShutdownTimeout = 15
)
