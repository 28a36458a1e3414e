package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// SummaryTable renders the holdings of the report as tab separated lines,
// starting with a header and ending with the portfolio total.
func SummaryTable(r *rebalance.Report) []string {
	lines := []string{strings.Join([]string{"Asset Class", "Amount", "Weight", "Target"}, "\t")}
	for _, h := range r.Holdings {
		lines = append(lines, strings.Join([]string{
			h.AssetClass,
			h.Amount.String(),
			h.Weight.String(),
			targetString(h.Target),
		}, "\t"))
	}
	lines = append(lines, strings.Join([]string{
		"Total",
		r.Total.String(),
		r.Total.Ratio(r.Total).String(),
		r.TargetTotal.String(),
	}, "\t"))
	return lines
}

// AdjustmentLines renders the adjustments of the report as "Buy $X of Y" and
// "Sell $X of Y" lines. A warning comes first if the targets do not add up to 100%.
func AdjustmentLines(r *rebalance.Report) []string {
	var lines []string
	if w := TargetWarning(r); w != "" {
		lines = append(lines, w)
	}
	if len(r.Adjustments) == 0 {
		return append(lines, "Portfolio is balanced.")
	}
	lines = append(lines, "Adjustments needed:")
	for _, a := range r.Adjustments {
		lines = append(lines, a.String())
	}
	return lines
}

// TargetWarning returns a warning when targets do not add up to 100%, or "".
func TargetWarning(r *rebalance.Report) string {
	if r.IsFullyAllocated() {
		return ""
	}
	return fmt.Sprintf("Warning: targets add up to %s, not 100%%.", r.TargetTotal)
}

func targetString(p *rebalance.Percent) string {
	if p == nil {
		return "-"
	}
	return p.String()
}
