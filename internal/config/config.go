// Package config defines the application configuration and loads it from
// YAML, a .env file and AMORTIZATION_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Configuration holds all configuration for the amortization commands.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Locale   LocaleConfig   `yaml:"locale,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
	Chart  bool   `yaml:"chart,omitempty"`
}

// LocaleConfig selects the display language and currency symbol.
type LocaleConfig struct {
	Language       string `yaml:"language,omitempty"`
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
}

// DefaultsConfig holds values preselected in forms.
type DefaultsConfig struct {
	System string `yaml:"system,omitempty"`
}

var defaults = map[string]interface{}{
	"logging.level":         "",
	"logging.format":        "",
	"logging.outputFile":    "",
	"output.format":         constants.OutputFormatPretty,
	"output.chart":          false,
	"locale.language":       constants.DefaultLanguage,
	"locale.currencySymbol": constants.DefaultCurrencySymbol,
	"defaults.system":       constants.DefaultSystem,
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults, still subject to
// environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the output format, language tag and default system.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := language.Parse(c.Locale.Language); err != nil {
		return fmt.Errorf("invalid locale language %q: %w", c.Locale.Language, err)
	}
	if _, err := amortization.ParseSystem(c.Defaults.System); err != nil {
		return fmt.Errorf("invalid default system: %w", err)
	}
	return nil
}

// DefaultSystem returns the configured default system, falling back to SAC.
func (c *Configuration) DefaultSystem() amortization.System {
	system, err := amortization.ParseSystem(c.Defaults.System)
	if err != nil {
		return amortization.SAC
	}
	return system
}
