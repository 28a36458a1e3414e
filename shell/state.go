package shell

import (
	"slices"
	"strings"

	"github.com/etnz/rebalance"
)

// State of the ledger as seen by the shell. It decides which actions are offered.
type State int

const (
	// Empty ledgers only accept new asset classes.
	Empty State = iota
	// HasAssets ledgers have at least one asset class, and some without target.
	HasAssets
	// Complete ledgers have a target for every asset class.
	Complete
)

// StateOf derives the state from the ledger content.
func StateOf(l *rebalance.Ledger) State {
	switch {
	case l.Len() == 0:
		return Empty
	case l.IsComplete():
		return Complete
	default:
		return HasAssets
	}
}

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case HasAssets:
		return "has assets"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Action is one entry of the main menu.
type Action int

const (
	AddAssetClass Action = iota + 1
	SetAllocation
	SetTarget
	CheckPortfolio
	ComputeExchange
	Exit
)

var actionLabels = map[Action]string{
	AddAssetClass:   "Add Asset Class",
	SetAllocation:   "Set Allocation",
	SetTarget:       "Set Target",
	CheckPortfolio:  "Check Portfolio",
	ComputeExchange: "Compute Exchange",
	Exit:            "Exit",
}

func (a Action) String() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return "Unknown"
}

// ParseAction returns the action whose label matches s, ignoring case and spaces.
func ParseAction(s string) (Action, bool) {
	key := normalize(s)
	for a, label := range actionLabels {
		if normalize(label) == key {
			return a, true
		}
	}
	return 0, false
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Actions returns the actions offered in state s, in menu order.
func Actions(s State) []Action {
	switch s {
	case Empty:
		return []Action{AddAssetClass, Exit}
	case HasAssets:
		return []Action{AddAssetClass, SetAllocation, SetTarget, CheckPortfolio, Exit}
	default:
		return []Action{AddAssetClass, SetAllocation, SetTarget, CheckPortfolio, ComputeExchange, Exit}
	}
}

// Allowed reports whether a is offered in state s.
func Allowed(s State, a Action) bool {
	return slices.Contains(Actions(s), a)
}
