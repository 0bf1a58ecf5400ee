// Package statement normalizes the three scraped statement tables into an
// immutable record of canonical numeric series, all aligned to one shared
// period index (most-recent first). The record is built once per run; every
// downstream ratio reads from it without locking.
package statement

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/finlens/ratioscope/pkg/logger"
	"github.com/finlens/ratioscope/pkg/models"
)

// ErrNoPeriods means the income statement carried no period columns, so no
// record can be aligned at all.
var ErrNoPeriods = errors.New("no reporting periods in income statement")

// MissingFieldError marks a canonical field whose source column is absent
// from its statement table. It is recorded on the field, never raised: the
// field's series stays undefined and every other field resolves normally.
type MissingFieldError struct {
	Field     Field
	Statement Statement
	Label     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("canonical field %q: no %q column in %s table", e.Field, e.Label, e.Statement)
}

// Record is the canonical financial record: every canonical field mapped to
// a series of PeriodCount values. Built once from a StatementSet and never
// mutated afterward; accessors hand out copies.
type Record struct {
	ticker  string
	periods []string
	series  map[Field]Series
	missing map[Field]*MissingFieldError
}

// Build resolves every canonical field against the scraped tables and
// coerces cell text to numbers. Missing columns and non-numeric cells
// degrade to undefined values (logged, not returned as errors); only an
// empty period index aborts the build.
func Build(set *models.StatementSet, log *logger.Logger) (*Record, error) {
	if log == nil {
		log = logger.Nop()
	}

	periods := set.Periods()
	if len(periods) == 0 {
		return nil, ErrNoPeriods
	}
	n := len(periods)

	rec := &Record{
		ticker:  set.Ticker,
		periods: append([]string(nil), periods...),
		series:  make(map[Field]Series, len(fieldSources)),
		missing: make(map[Field]*MissingFieldError),
	}

	for _, src := range fieldSources {
		table := tableFor(set, src.Statement)
		cells, ok := table.Column(src.Label)
		if !ok {
			ferr := &MissingFieldError{Field: src.Field, Statement: src.Statement, Label: src.Label}
			rec.missing[src.Field] = ferr
			rec.series[src.Field] = Undefined(n)
			log.WithField("field", string(src.Field)).Warn(ferr.Error())
			continue
		}

		s := make(Series, n)
		for i := 0; i < n; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			v, numeric := parseCell(cell)
			if !numeric {
				log.WithField("field", string(src.Field)).
					WithField("period", periods[i]).
					Debugf("non-numeric cell %q coerced to undefined", cell)
			}
			s[i] = v
		}
		rec.series[src.Field] = s
	}

	return rec, nil
}

// tableFor picks the raw table a statement kind maps to.
func tableFor(set *models.StatementSet, st Statement) *models.RawTable {
	switch st {
	case StatementBalance:
		return &set.Balance
	case StatementCashFlow:
		return &set.CashFlow
	default:
		return &set.Income
	}
}

// parseCell coerces one scraped cell to a number. Yahoo writes thousands
// separators and marks empty cells with "-"; anything unparsable becomes the
// undefined marker. The bool reports whether the cell was numeric.
func parseCell(cell string) (float64, bool) {
	text := strings.TrimSpace(cell)
	if text == "" || text == "-" || strings.EqualFold(text, "n/a") {
		return math.NaN(), false
	}
	text = strings.ReplaceAll(text, ",", "")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// Ticker returns the symbol the record was built for.
func (r *Record) Ticker() string {
	return r.ticker
}

// Periods returns a copy of the period labels, most-recent first.
func (r *Record) Periods() []string {
	return append([]string(nil), r.periods...)
}

// PeriodCount returns N, the length every series in the record shares.
func (r *Record) PeriodCount() int {
	return len(r.periods)
}

// Series returns a copy of one field's values. Unknown fields return an
// all-undefined series rather than failing, matching the degradation rule
// for missing source columns.
func (r *Record) Series(f Field) Series {
	s, ok := r.series[f]
	if !ok {
		return Undefined(len(r.periods))
	}
	return append(Series(nil), s...)
}

// FieldError returns the resolution error recorded for a field, if any.
func (r *Record) FieldError(f Field) (*MissingFieldError, bool) {
	err, ok := r.missing[f]
	return err, ok
}

// MissingFields lists the fields whose source columns were absent, in
// canonical declaration order.
func (r *Record) MissingFields() []Field {
	var fields []Field
	for _, src := range fieldSources {
		if _, ok := r.missing[src.Field]; ok {
			fields = append(fields, src.Field)
		}
	}
	return fields
}
