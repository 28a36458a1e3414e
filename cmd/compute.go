package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/etnz/rebalance/shell"
	"github.com/google/subcommands"
)

// computeCmd holds the flags for the 'compute' subcommand.
type computeCmd struct {
	portfolioFlags
	json     bool
	path     string
	markdown bool
}

func (*computeCmd) Name() string { return "compute" }
func (*computeCmd) Synopsis() string {
	return "compute the adjustments needed to reach the target weights"
}
func (*computeCmd) Usage() string {
	return `rebal compute -a NAME=AMOUNT... -t NAME=PERCENT... [-json] [-path <jsonpath>] [-md]

  Computes the buy and sell adjustments that bring every asset class to its
  target. Every asset class needs a target.

Usage Examples:
$ rebal compute -a Stocks=600 -a Bonds=400 -t Stocks=50 -t Bonds=50
Adjustments needed:
Buy $100.00 of Bonds
Sell $100.00 of Stocks

`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.allocations, "a", "current allocation of an asset class as NAME=AMOUNT, can be repeated")
	f.Var(&c.targets, "t", "target of an asset class as NAME=PERCENT, can be repeated")
	f.BoolVar(&c.json, "json", false, "print the full report as JSON")
	f.StringVar(&c.path, "path", "", "print what the JSONPath expression selects in the JSON report")
	f.BoolVar(&c.markdown, "md", false, "render the report as a formatted document")
}

func (c *computeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ok := mustConfig()
	if !ok {
		return subcommands.ExitUsageError
	}
	if err := c.run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing adjustments: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *computeCmd) run(w io.Writer, cfg config) error {
	d := cfg.dispatcher()
	l, err := c.buildLedger(d, cfg.currency)
	if err != nil {
		return err
	}
	if state := shell.StateOf(l); state != shell.Complete {
		return fmt.Errorf("every asset class needs a target (-t NAME=PERCENT)")
	}

	report := l.NewReport(cfg.epsilon)
	switch {
	case c.path != "":
		return printJSONPath(w, report, c.path)
	case c.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case c.markdown:
		printMarkdown(w, renderer.ReportMarkdown(report))
		return nil
	}

	res := d.Dispatch(l, shell.Command{Action: shell.ComputeExchange})
	if res.Err != nil {
		return res.Err
	}
	for _, line := range res.Lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

// printJSONPath evaluates the JSONPath expression on the JSON encoding of the
// report, and prints the selected values one per line.
func printJSONPath(w io.Writer, report *rebalance.Report, path string) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber() // keep amounts exact
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	return printJSONValue(w, selected)
}

func printJSONValue(w io.Writer, v any) error {
	switch v := v.(type) {
	case []any:
		for _, e := range v {
			if err := printJSONValue(w, e); err != nil {
				return err
			}
		}
		return nil
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}
