package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the full rebalancing report as markdown.
func ReportMarkdown(r *rebalance.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalancing Report\n\n")
	ConditionalBlock(&b, func(w io.Writer) bool { return renderWarning(w, r) })
	renderHoldings(&b, r)
	renderAdjustments(&b, r)
	return b.String()
}

func renderWarning(w io.Writer, r *rebalance.Report) bool {
	warning := TargetWarning(r)
	if warning == "" {
		return false
	}
	fmt.Fprintf(w, "> %s\n\n", warning)
	return true
}

func renderHoldings(w io.Writer, r *rebalance.Report) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Holdings")
	doc.PlainText(fmt.Sprintf("Total Market Value: %s", r.Total))

	rows := make([][]string, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		drift := "-"
		if d, ok := h.Drift(); ok {
			drift = d.SignedString()
		}
		rows = append(rows, []string{h.AssetClass, h.Amount.String(), h.Weight.String(), targetString(h.Target), drift})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset Class", "Amount", "Weight", "Target", "Drift"},
		Rows:   rows,
	})
	io.WriteString(w, doc.String())
}

func renderAdjustments(w io.Writer, r *rebalance.Report) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Adjustments")
	if len(r.Adjustments) == 0 {
		doc.PlainText("Portfolio is balanced.")
		io.WriteString(w, doc.String())
		return
	}
	items := make([]string, 0, len(r.Adjustments))
	for _, a := range r.Adjustments {
		items = append(items, a.String())
	}
	doc.BulletList(items...)
	io.WriteString(w, doc.String())
}
