package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/shell"
)

// assignment is a NAME=VALUE pair given on the command line.
type assignment struct {
	Name  string
	Value string
}

// assignments is a repeatable flag.Value of NAME=VALUE pairs.
type assignments []assignment

func (a *assignments) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, len(*a))
	for i, v := range *a {
		parts[i] = v.Name + "=" + v.Value
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(s string) error {
	i := strings.LastIndex(s, "=")
	if i <= 0 {
		return fmt.Errorf("%q is not in the NAME=VALUE form", s)
	}
	name := strings.TrimSpace(s[:i])
	if name == "" {
		return fmt.Errorf("%q has an empty name", s)
	}
	*a = append(*a, assignment{Name: name, Value: s[i+1:]})
	return nil
}

// portfolioFlags are the flags describing a whole portfolio.
type portfolioFlags struct {
	allocations assignments
	targets     assignments
}

// buildLedger replays the flags as shell commands on a new ledger.
//
// Asset classes are added in the order they first appear, an asset class
// named twice is not reset.
func (p *portfolioFlags) buildLedger(d *shell.Dispatcher, currency string) (*rebalance.Ledger, error) {
	l := rebalance.NewLedger(currency)
	if len(p.allocations) == 0 && len(p.targets) == 0 {
		return nil, errors.New("no asset class, use -a NAME=AMOUNT and -t NAME=PERCENT")
	}

	var cmds []shell.Command
	added := make(map[string]bool)
	add := func(name string) {
		if !added[name] {
			added[name] = true
			cmds = append(cmds, shell.Command{Action: shell.AddAssetClass, Name: name})
		}
	}
	for _, a := range p.allocations {
		add(a.Name)
		cmds = append(cmds, shell.Command{Action: shell.SetAllocation, Name: a.Name, Value: a.Value})
	}
	for _, t := range p.targets {
		add(t.Name)
		cmds = append(cmds, shell.Command{Action: shell.SetTarget, Name: t.Name, Value: t.Value})
	}

	for _, c := range cmds {
		if res := d.Dispatch(l, c); res.Err != nil {
			return nil, fmt.Errorf("%s %s: %w", c.Action, c.Name, res.Err)
		}
	}
	return l, nil
}
