// Package cmd implements the rebal subcommands.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/logger"
	"github.com/etnz/rebalance/shell"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Commands lists the rebal subcommands, the first one is the default.
var Commands = []subcommands.Command{
	&shellCmd{},
	&computeCmd{},
	&checkCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, cmd := range Commands {
		c.Register(cmd, "portfolio")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	currencyFlag = flag.String("currency", "", "Currency of the portfolio. Defaults to $"+EnvCurrency+" or "+rebalance.DefaultCurrency+".")
	epsilonFlag  = flag.String("epsilon", "", "Adjustments of this amount or less are not reported. Defaults to $"+EnvEpsilon+" or "+rebalance.DefaultEpsilon.String()+".")
	Verbose      = flag.Bool("v", false, "Print diagnostics on stderr. Defaults to $"+EnvVerbose+".")
)

// LoadEnv loads environment variables from a .env file in the current
// directory. A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// config holds the global settings, resolved from the flags and the environment.
type config struct {
	currency string
	epsilon  decimal.Decimal
	verbose  bool
}

// loadConfig resolves the global settings: a flag wins over its environment
// variable, which wins over the default value.
func loadConfig() (config, error) {
	cfg := config{
		currency: rebalance.DefaultCurrency,
		epsilon:  rebalance.DefaultEpsilon,
		verbose:  *Verbose,
	}

	if cur := firstNonEmpty(*currencyFlag, os.Getenv(EnvCurrency)); cur != "" {
		cfg.currency = cur
	}

	if eps := firstNonEmpty(*epsilonFlag, os.Getenv(EnvEpsilon)); eps != "" {
		d, err := decimal.NewFromString(eps)
		if err != nil {
			return cfg, fmt.Errorf("invalid epsilon %q: %w", eps, err)
		}
		if d.IsNegative() {
			return cfg, fmt.Errorf("invalid epsilon %q: must not be negative", eps)
		}
		cfg.epsilon = d
	}

	if !cfg.verbose {
		if v := os.Getenv(EnvVerbose); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
			}
			cfg.verbose = b
		}
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// logger returns the diagnostics logger for these settings.
func (c config) logger() zerolog.Logger {
	level := "warn"
	if c.verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Pretty: true})
}

// dispatcher returns the shell dispatcher for these settings.
func (c config) dispatcher() *shell.Dispatcher {
	return shell.NewDispatcher(c.epsilon, c.logger())
}

// mustConfig loads the configuration or reports the error on stderr.
func mustConfig() (config, bool) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return cfg, false
	}
	return cfg, true
}
