// Package valuation derives cost-of-capital figures from the canonical
// record plus the quoted beta. It feeds the report's optional appendix and
// never blocks ratio computation.
package valuation

import (
	"errors"
	"math"

	"github.com/finlens/ratioscope/internal/statement"
)

// CAPM assumptions used when the configuration does not override them.
const (
	DefaultRiskFreeRate = 0.02
	DefaultMarketReturn = 0.098
)

// ErrInsufficientData means a required input was undefined or the capital
// base was zero, so no meaningful cost of capital exists.
var ErrInsufficientData = errors.New("insufficient data for cost of capital")

// Inputs are the most-recent-period figures WACC is computed from. Monetary
// amounts share the statements' thousands unit; rates are fractions.
type Inputs struct {
	Beta             float64
	RiskFreeRate     float64
	MarketReturn     float64
	TotalLiabilities float64
	TotalEquity      float64
	InterestExpense  float64
}

// Result holds the weighted average cost of capital and its components, all
// as fractions of one.
type Result struct {
	CostOfDebt   float64
	CostOfEquity float64
	WeightDebt   float64
	WeightEquity float64
	WACC         float64
}

// Compute derives WACC: cost of debt as the effective interest rate on total
// liabilities, cost of equity from CAPM, weights from the capital structure.
func Compute(in Inputs) (*Result, error) {
	for _, v := range []float64{in.Beta, in.TotalLiabilities, in.TotalEquity, in.InterestExpense} {
		if statement.IsUndefined(v) {
			return nil, ErrInsufficientData
		}
	}

	capital := in.TotalLiabilities + in.TotalEquity
	if capital == 0 {
		return nil, ErrInsufficientData
	}

	costOfDebt := 0.0
	if in.TotalLiabilities != 0 {
		costOfDebt = math.Abs(in.InterestExpense) / in.TotalLiabilities
	}
	costOfEquity := in.RiskFreeRate + in.Beta*(in.MarketReturn-in.RiskFreeRate)

	weightDebt := in.TotalLiabilities / capital
	weightEquity := in.TotalEquity / capital

	return &Result{
		CostOfDebt:   costOfDebt,
		CostOfEquity: costOfEquity,
		WeightDebt:   weightDebt,
		WeightEquity: weightEquity,
		WACC:         weightDebt*costOfDebt + weightEquity*costOfEquity,
	}, nil
}

// FromRecord computes WACC from the record's most recent period.
func FromRecord(rec *statement.Record, beta, riskFree, marketReturn float64) (*Result, error) {
	if rec.PeriodCount() == 0 {
		return nil, ErrInsufficientData
	}
	return Compute(Inputs{
		Beta:             beta,
		RiskFreeRate:     riskFree,
		MarketReturn:     marketReturn,
		TotalLiabilities: rec.Series(statement.FieldTotalLiabilities)[0],
		TotalEquity:      rec.Series(statement.FieldTotalEquity)[0],
		InterestExpense:  rec.Series(statement.FieldInterestExpense)[0],
	})
}
