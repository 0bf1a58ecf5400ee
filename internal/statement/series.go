package statement

import "math"

// Series is one line item's values across all reporting periods, most-recent
// first. Undefined cells are math.NaN(); arithmetic on a series propagates
// the marker instead of failing, so one bad cell never poisons its
// neighbours.
type Series []float64

// Undefined returns a series of n undefined cells.
func Undefined(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// IsUndefined reports whether v is the undefined marker.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// at reads position i, treating positions past the end as undefined. Keeps
// every derived series at the receiver's length even when an operand came up
// short.
func (s Series) at(i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return math.NaN()
}

// Add returns s[i] + o[i] per position.
func (s Series) Add(o Series) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v + o.at(i)
	}
	return out
}

// Sub returns s[i] - o[i] per position.
func (s Series) Sub(o Series) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v - o.at(i)
	}
	return out
}

// Scale returns s[i] * k per position.
func (s Series) Scale(k float64) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v * k
	}
	return out
}

// Abs returns |s[i]| per position.
func (s Series) Abs() Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = math.Abs(v)
	}
	return out
}

// Div returns s[i] / o[i] per position. A zero or undefined denominator
// yields an undefined cell at that position only; it never becomes ±Inf and
// never affects other positions.
func (s Series) Div(o Series) Series {
	out := make(Series, len(s))
	for i, v := range s {
		d := o.at(i)
		if d == 0 || math.IsNaN(d) {
			out[i] = math.NaN()
			continue
		}
		out[i] = v / d
	}
	return out
}

// TwoPeriodAverage pairs each period with the immediately older one and
// stores the mean at the newer position: avg[i] = (s[i] + s[i+1]) / 2. The
// oldest position has no older period to pair with and is always undefined.
// Flow-over-stock ratios (turnover, return on assets) divide by this instead
// of a single snapshot.
func (s Series) TwoPeriodAverage() Series {
	out := make(Series, len(s))
	for i := range s {
		if i+1 < len(s) {
			out[i] = (s[i] + s[i+1]) / 2
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
