package report

import (
	"fmt"
	"strings"

	"github.com/finlens/ratioscope/internal/news"
	"github.com/finlens/ratioscope/internal/valuation"
)

// Options carries the optional appendix blocks a renderer may add after the
// four ratio sections. Nil/empty fields render nothing.
type Options struct {
	CostOfCapital *valuation.Result
	Headlines     []news.Headline
}

// RenderMarkdown renders the document as GitHub-flavored markdown. Output is
// deterministic: the same document and options produce identical bytes.
func RenderMarkdown(doc *Document, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Ratio Analysis: %s\n\n", doc.Ticker)

	for _, sec := range doc.Sections {
		b.WriteString("## " + sec.Title + "\n\n")
		writeTable(&b, sec.Table)
		b.WriteString("\n")
	}

	if opts.CostOfCapital != nil {
		writeCostOfCapital(&b, opts.CostOfCapital)
	}
	if len(opts.Headlines) > 0 {
		writeHeadlines(&b, opts.Headlines)
	}

	return b.String()
}

// writeTable emits one category table with ratio names as row labels and
// period labels as the column header.
func writeTable(b *strings.Builder, t Table) {
	b.WriteString("| Ratio |")
	for _, p := range t.Header {
		b.WriteString(" " + p + " |")
	}
	b.WriteString("\n|---|")
	for range t.Header {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString("| " + row.Label + " |")
		for _, v := range row.Values {
			b.WriteString(" " + v + " |")
		}
		b.WriteString("\n")
	}
}

// writeCostOfCapital emits the WACC appendix for the most recent period.
func writeCostOfCapital(b *strings.Builder, r *valuation.Result) {
	b.WriteString("## Cost of Capital\n\n")
	b.WriteString("| Component | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Cost of Debt | %s |\n", formatPct(r.CostOfDebt))
	fmt.Fprintf(b, "| Cost of Equity | %s |\n", formatPct(r.CostOfEquity))
	fmt.Fprintf(b, "| Debt Weight | %s |\n", formatPct(r.WeightDebt))
	fmt.Fprintf(b, "| Equity Weight | %s |\n", formatPct(r.WeightEquity))
	fmt.Fprintf(b, "| WACC | %s |\n", formatPct(r.WACC))
	b.WriteString("\n")
}

// writeHeadlines emits the recent-headlines appendix.
func writeHeadlines(b *strings.Builder, headlines []news.Headline) {
	b.WriteString("## Recent Headlines\n\n")
	for _, h := range headlines {
		line := fmt.Sprintf("- [%s](%s)", h.Title, h.URL)
		if !h.PublishedAt.IsZero() {
			line += " (" + h.PublishedAt.Format("02 Jan 2006") + ")"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// formatPct renders a fraction as a percentage with two decimals.
func formatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
