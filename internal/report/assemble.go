// Package report assembles computed ratio series into one sectioned document
// and renders it to markdown or HTML. Assembly transposes each category so
// ratio names label the rows and period labels head the columns, exactly one
// table per category, in registry declaration order.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/finlens/ratioscope/internal/ratio"
	"github.com/finlens/ratioscope/internal/statement"
)

// Format specifies the rendered output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Ext returns the file extension used for reports in this format.
func (f Format) Ext() string {
	if f == FormatHTML {
		return "html"
	}
	return "md"
}

// ParseFormat resolves a format name. An empty name selects markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Precision is the fixed display precision. Rounding happens here and only
// here; every intermediate value a ratio consumes stays unrounded.
const Precision = 3

// undefinedCell is how an undefined value renders.
const undefinedCell = "N/A"

// Row is one ratio's formatted values across all periods.
type Row struct {
	Label  string
	Values []string
}

// Table is one category's rows under the shared period header.
type Table struct {
	Header []string
	Rows   []Row
}

// Section pairs a category title with its table.
type Section struct {
	Title string
	Table Table
}

// Document is the assembled report for one ticker. Rebuilding it from an
// unchanged record produces an identical value; it carries no timestamps or
// other per-run state.
type Document struct {
	Ticker   string
	Periods  []string
	Sections []Section
}

// Assemble computes every registered ratio over the record and lays the
// results out as category tables. A series that comes up short of the period
// index is padded with undefined cells; rows are never dropped or reordered.
func Assemble(rec *statement.Record) *Document {
	periods := rec.Periods()
	categories := ratio.Categories()

	// The record is immutable and the ratio functions share no state, so
	// categories compute independently. Each result lands at its own index,
	// keeping the document in declaration order.
	sections := make([]Section, len(categories))
	var wg sync.WaitGroup
	for i, cat := range categories {
		i, cat := i, cat
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows := make([]Row, len(cat.Definitions))
			for j, def := range cat.Definitions {
				rows[j] = Row{
					Label:  def.Name,
					Values: formatSeries(def.Compute(rec), len(periods)),
				}
			}
			sections[i] = Section{
				Title: cat.Title,
				Table: Table{Header: periods, Rows: rows},
			}
		}()
	}
	wg.Wait()

	return &Document{
		Ticker:   rec.Ticker(),
		Periods:  periods,
		Sections: sections,
	}
}

// formatSeries renders a series at display precision, padded to n cells.
func formatSeries(s statement.Series, n int) []string {
	values := make([]string, n)
	for i := 0; i < n; i++ {
		v := math.NaN()
		if i < len(s) {
			v = s[i]
		}
		values[i] = formatValue(v)
	}
	return values
}

// formatValue renders one cell.
func formatValue(v float64) string {
	if statement.IsUndefined(v) {
		return undefinedCell
	}
	return strconv.FormatFloat(v, 'f', Precision, 64)
}
