package models

import (
	"strconv"
	"strings"
)

// RawTable holds one scraped financial statement in transposed form: each
// line item is a column and each row is one reporting period, most-recent
// first. Cells keep their scraped text until coercion; Yahoo marks empty
// cells with "-".
type RawTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// PeriodCount returns the number of reporting periods in the table.
func (t *RawTable) PeriodCount() int {
	return len(t.Rows)
}

// Column returns the per-period values of the line item with the given
// label. The second return is false when no column carries that label.
func (t *RawTable) Column(label string) ([]string, bool) {
	for i, col := range t.Columns {
		if col == label {
			return t.ColumnAt(i), true
		}
	}
	return nil, false
}

// ColumnAt returns the per-period values of the i-th column. Rows shorter
// than i contribute an empty cell.
func (t *RawTable) ColumnAt(i int) []string {
	if i < 0 || i >= len(t.Columns) {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if i < len(row) {
			values = append(values, row[i])
		} else {
			values = append(values, "")
		}
	}
	return values
}

// StatementSet aggregates the three statement tables scraped for one ticker.
type StatementSet struct {
	Ticker   string   `json:"ticker"`
	Balance  RawTable `json:"balance"`
	Income   RawTable `json:"income"`
	CashFlow RawTable `json:"cash_flow"`
}

// Periods returns the shared period labels, most-recent first. The income
// statement's first column carries the reporting dates; the other two
// statements are aligned to it positionally.
func (s *StatementSet) Periods() []string {
	return s.Income.ColumnAt(0)
}

// Quote holds the label/value pairs scraped from the two quote summary
// tables (previous close, market cap, beta, ...).
type Quote struct {
	Ticker string            `json:"ticker"`
	Fields map[string]string `json:"fields"`
}

// Value returns the raw text for a summary label.
func (q *Quote) Value(label string) (string, bool) {
	v, ok := q.Fields[label]
	return v, ok
}

// Beta parses the quote's beta value. The second return is false when the
// field is absent or not numeric ("N/A" for funds and fresh listings).
func (q *Quote) Beta() (float64, bool) {
	raw, ok := q.Fields["Beta (3Y Monthly)"]
	if !ok {
		return 0, false
	}
	beta, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return beta, true
}
