package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/rebalance/shell"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	portfolioFlags
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "display the portfolio summary table" }
func (*checkCmd) Usage() string {
	return `rebal check -a NAME=AMOUNT... [-t NAME=PERCENT...]

  Displays, for each asset class, its amount, its weight in the portfolio and
  its target, as tab separated columns.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.allocations, "a", "current allocation of an asset class as NAME=AMOUNT, can be repeated")
	f.Var(&c.targets, "t", "target of an asset class as NAME=PERCENT, can be repeated")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := mustConfig()
	if !ok {
		return subcommands.ExitUsageError
	}
	if err := c.run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error checking portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *checkCmd) run(w io.Writer, cfg config) error {
	d := cfg.dispatcher()
	l, err := c.buildLedger(d, cfg.currency)
	if err != nil {
		return err
	}
	res := d.Dispatch(l, shell.Command{Action: shell.CheckPortfolio})
	if res.Err != nil {
		return res.Err
	}
	for _, line := range res.Lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
