package rebalance

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when an operation names an asset class that was never added.
	ErrNotFound = errors.New("asset class not found")
	// ErrCurrencyMismatch is returned when an amount is not in the ledger currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrNegativeAmount is returned when an allocation is below zero.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrTargetOutOfRange is returned when a target is not between 0% and 100%.
	ErrTargetOutOfRange = errors.New("target out of range")
)

// AssetClass is a named category of investment, like "Stocks".
type AssetClass struct {
	Name   string
	Amount Money    // current amount invested, never negative
	Target *Percent // target weight in the portfolio, nil until set
}

// HasTarget reports whether a target weight has been set.
func (a AssetClass) HasTarget() bool { return a.Target != nil }

// Ledger represents the asset classes of a portfolio.
//
// Asset classes are indexed by name, they are never deleted.
type Ledger struct {
	currency string
	classes  map[string]AssetClass
}

// NewLedger creates an empty ledger whose amounts are in currency.
// An empty currency means DefaultCurrency.
func NewLedger(currency string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Ledger{
		currency: currency,
		classes:  make(map[string]AssetClass),
	}
}

// Currency returns the ledger currency.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of asset classes.
func (l *Ledger) Len() int { return len(l.classes) }

// AssetClass returns the asset class declared with this name, or nil if unknown.
func (l *Ledger) AssetClass(name string) *AssetClass {
	a, ok := l.classes[name]
	if !ok {
		return nil
	}
	return &a
}

// Names returns the asset class names in lexical order.
func (l *Ledger) Names() []string {
	return slices.Sorted(maps.Keys(l.classes))
}

// AddAssetClass inserts an asset class with a zero amount and no target.
//
// Adding a name that already exists replaces the existing asset class: its
// amount is reset to zero and its target is unset.
func (l *Ledger) AddAssetClass(name string) {
	l.classes[name] = AssetClass{Name: name, Amount: M(0, l.currency)}
}

// SetAllocation sets the amount currently invested in the named asset class.
func (l *Ledger) SetAllocation(name string, amount Money) error {
	a, ok := l.classes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if amount.Currency() != "" && amount.Currency() != l.currency {
		return fmt.Errorf("%w: %s amount in a %s ledger", ErrCurrencyMismatch, amount.Currency(), l.currency)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s for %q", ErrNegativeAmount, amount, name)
	}
	a.Amount = Money{value: amount.value, cur: l.currency}
	l.classes[name] = a
	return nil
}

// SetTarget sets the target weight of the named asset class.
func (l *Ledger) SetTarget(name string, target Percent) error {
	a, ok := l.classes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if target.value.IsNegative() || target.value.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s for %q", ErrTargetOutOfRange, target, name)
	}
	a.Target = &target
	l.classes[name] = a
	return nil
}

// Total returns the sum of all amounts.
func (l *Ledger) Total() Money {
	total := M(0, l.currency)
	for _, a := range l.classes {
		total = total.Add(a.Amount)
	}
	return total
}

// TargetTotal returns the sum of all the targets that are set.
func (l *Ledger) TargetTotal() Percent {
	var total Percent
	for _, a := range l.classes {
		if a.Target != nil {
			total = total.Add(*a.Target)
		}
	}
	return total
}

// IsComplete reports whether every asset class has a target.
// An empty ledger is not complete.
func (l *Ledger) IsComplete() bool {
	if len(l.classes) == 0 {
		return false
	}
	for _, a := range l.classes {
		if a.Target == nil {
			return false
		}
	}
	return true
}
