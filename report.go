package rebalance

import "github.com/shopspring/decimal"

// Holding is one row of a portfolio summary.
type Holding struct {
	AssetClass string
	Amount     Money
	Weight     Percent  // Amount as a fraction of the portfolio total
	Target     *Percent // nil when the asset class has no target
}

// Drift returns Weight - Target, and false when there is no target.
func (h Holding) Drift() (Percent, bool) {
	if h.Target == nil {
		return Percent{}, false
	}
	return h.Weight.Sub(*h.Target), true
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Set("assetClass", h.AssetClass)
	w.Set("amount", h.Amount.value)
	w.Set("weight", h.Weight.value.Round(4))
	if h.Target != nil {
		w.Set("target", h.Target.value)
	}
	return w.MarshalJSON()
}

// Summary returns one Holding per asset class, in name order.
func (l *Ledger) Summary() []Holding {
	total := l.Total()
	holdings := make([]Holding, 0, len(l.classes))
	for _, name := range l.Names() {
		a := l.classes[name]
		holdings = append(holdings, Holding{
			AssetClass: name,
			Amount:     a.Amount,
			Weight:     a.Amount.Ratio(total),
			Target:     a.Target,
		})
	}
	return holdings
}

// Report gathers everything known about a rebalancing: the current holdings
// and the adjustments to reach the targets.
type Report struct {
	Currency    string
	Total       Money
	TargetTotal Percent
	Complete    bool
	Holdings    []Holding
	Adjustments []Adjustment
}

// NewReport computes the report of the ledger, adjustments of epsilon or less are ignored.
func (l *Ledger) NewReport(epsilon decimal.Decimal) *Report {
	return &Report{
		Currency:    l.currency,
		Total:       l.Total(),
		TargetTotal: l.TargetTotal(),
		Complete:    l.IsComplete(),
		Holdings:    l.Summary(),
		Adjustments: l.AdjustmentsAbove(epsilon),
	}
}

// IsFullyAllocated reports whether the targets add up to exactly 100%.
func (r *Report) IsFullyAllocated() bool {
	return r.TargetTotal.Equal(Points(100))
}

func (r *Report) MarshalJSON() ([]byte, error) {
	holdings := r.Holdings
	if holdings == nil {
		holdings = []Holding{}
	}
	adjustments := r.Adjustments
	if adjustments == nil {
		adjustments = []Adjustment{}
	}
	var w orderedObject
	w.Set("currency", r.Currency)
	w.Set("total", r.Total.value)
	w.Set("targetTotal", r.TargetTotal.value)
	w.Set("complete", r.Complete)
	w.Set("holdings", holdings)
	w.Set("adjustments", adjustments)
	return w.MarshalJSON()
}
