package rebalance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultEpsilon is the smallest adjustment, in currency units, worth reporting.
var DefaultEpsilon = decimal.New(1, -2)

// Adjustment is the amount to buy (positive) or sell (negative) of an asset
// class to reach its target.
type Adjustment struct {
	AssetClass string
	Current    Money // amount currently invested
	Ideal      Money // amount matching the target weight
	Amount     Money // Ideal - Current
}

// IsBuy reports whether the adjustment is a purchase.
func (a Adjustment) IsBuy() bool { return a.Amount.IsPositive() }

// Action returns "Buy" or "Sell".
func (a Adjustment) Action() string {
	if a.IsBuy() {
		return "Buy"
	}
	return "Sell"
}

// String returns the adjustment as an instruction, like "Buy $100.00 of Bonds".
func (a Adjustment) String() string {
	return fmt.Sprintf("%s %s of %s", a.Action(), a.Amount.Abs(), a.AssetClass)
}

func (a Adjustment) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Set("assetClass", a.AssetClass)
	w.Set("action", strings.ToLower(a.Action()))
	w.Set("amount", a.Amount.Abs().Round().value)
	w.Set("current", a.Current.value)
	w.Set("ideal", a.Ideal.Round().value)
	return w.MarshalJSON()
}

// ComputeAdjustments returns the adjustments needed to reach every target,
// ignoring adjustments of DefaultEpsilon or less.
func (l *Ledger) ComputeAdjustments() []Adjustment {
	return l.AdjustmentsAbove(DefaultEpsilon)
}

// AdjustmentsAbove returns, in asset class name order, the adjustment of every
// asset class with a target whose absolute value is greater than epsilon.
//
// Each ideal amount is the portfolio total times the target weight. Asset
// classes without a target are left out.
func (l *Ledger) AdjustmentsAbove(epsilon decimal.Decimal) []Adjustment {
	total := l.Total()
	var adjustments []Adjustment
	for _, a := range l.classes {
		if a.Target == nil {
			continue
		}
		ideal := total.Mul(*a.Target)
		adj := ideal.Sub(a.Amount)
		if adj.value.Abs().LessThanOrEqual(epsilon) {
			continue
		}
		adjustments = append(adjustments, Adjustment{
			AssetClass: a.Name,
			Current:    a.Amount,
			Ideal:      ideal,
			Amount:     adj,
		})
	}
	slices.SortFunc(adjustments, func(a, b Adjustment) int { return strings.Compare(a.AssetClass, b.AssetClass) })
	return adjustments
}
