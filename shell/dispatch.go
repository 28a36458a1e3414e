package shell

import (
	"errors"
	"fmt"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrNotAllowed is returned when an action is not offered in the ledger state.
var ErrNotAllowed = errors.New("action not allowed")

// Command is a fully specified user request.
type Command struct {
	Action Action
	Name   string // asset class name, for every action but Check, Compute and Exit
	Value  string // raw amount or percent, for SetAllocation and SetTarget
}

// Result is what a Command produced: the lines to print, or an error.
type Result struct {
	Lines []string
	Err   error
	Exit  bool // the session must end
}

// Dispatcher applies commands to a ledger.
type Dispatcher struct {
	Epsilon decimal.Decimal // adjustments of this amount or less are not reported
	Log     zerolog.Logger
}

// NewDispatcher returns a Dispatcher reporting adjustments above epsilon.
func NewDispatcher(epsilon decimal.Decimal, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		Epsilon: epsilon,
		Log:     log.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch applies c to l with the default epsilon and no logging.
func Dispatch(l *rebalance.Ledger, c Command) Result {
	return NewDispatcher(rebalance.DefaultEpsilon, zerolog.Nop()).Dispatch(l, c)
}

// Dispatch applies c to l and returns the output lines.
//
// Parse failures are reported as a *rebalance.ParseError, unknown asset
// classes as rebalance.ErrNotFound and actions not offered in the current
// state as ErrNotAllowed. The ledger is left untouched on error.
func (d *Dispatcher) Dispatch(l *rebalance.Ledger, c Command) Result {
	state := StateOf(l)
	if !Allowed(state, c.Action) {
		return Result{Err: fmt.Errorf("%w: %s in %s state", ErrNotAllowed, c.Action, state)}
	}
	d.Log.Debug().Stringer("action", c.Action).Str("name", c.Name).Str("value", c.Value).Stringer("state", state).Msg("dispatch")

	switch c.Action {
	case AddAssetClass:
		if c.Name == "" {
			return Result{Err: errors.New("asset class name cannot be empty")}
		}
		l.AddAssetClass(c.Name)
		return lines(fmt.Sprintf("Added asset class %s.", c.Name))

	case SetAllocation:
		amount, err := rebalance.ParseAmount(c.Value, l.Currency())
		if err != nil {
			return Result{Err: err}
		}
		if err := l.SetAllocation(c.Name, amount); err != nil {
			return Result{Err: err}
		}
		return lines(fmt.Sprintf("%s allocation set to %s.", c.Name, amount))

	case SetTarget:
		target, err := rebalance.ParsePercent(c.Value)
		if err != nil {
			return Result{Err: err}
		}
		if err := l.SetTarget(c.Name, target); err != nil {
			return Result{Err: err}
		}
		return lines(fmt.Sprintf("%s target set to %s.", c.Name, target))

	case CheckPortfolio:
		return lines(renderer.SummaryTable(l.NewReport(d.Epsilon))...)

	case ComputeExchange:
		report := l.NewReport(d.Epsilon)
		d.Log.Debug().Str("total", report.Total.Decimal().String()).Int("adjustments", len(report.Adjustments)).Msg("computed adjustments")
		return lines(renderer.AdjustmentLines(report)...)

	case Exit:
		return Result{Exit: true}
	}
	return Result{Err: fmt.Errorf("unknown action %d", c.Action)}
}

func lines(l ...string) Result { return Result{Lines: l} }
