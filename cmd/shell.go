package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/shell"
	"github.com/google/subcommands"
)

// shellCmd starts the interactive session.
type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive rebalancing shell (default)" }
func (*shellCmd) Usage() string {
	return `rebal shell

  Starts an interactive session: add asset classes, set their current
  allocation and their target, then compute the exchanges needed.
  Nothing is saved when the session ends.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := mustConfig()
	if !ok {
		return subcommands.ExitUsageError
	}

	s := shell.NewSession(os.Stdout, os.Stdin, rebalance.NewLedger(cfg.currency), cfg.dispatcher())
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error in shell: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
