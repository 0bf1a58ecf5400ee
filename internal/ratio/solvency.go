package ratio

import "github.com/finlens/ratioscope/internal/statement"

// DebtRatio is totalLiabilities / totalAssets.
func DebtRatio(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldTotalLiabilities).
		Div(rec.Series(statement.FieldTotalAssets))
}

// EquityRatio is totalEquity / totalAssets.
func EquityRatio(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldTotalEquity).
		Div(rec.Series(statement.FieldTotalAssets))
}

// DebtToEquity is totalLiabilities / totalEquity.
func DebtToEquity(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldTotalLiabilities).
		Div(rec.Series(statement.FieldTotalEquity))
}

// DebtToIncome is totalLiabilities / grossProfit.
func DebtToIncome(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldTotalLiabilities).
		Div(rec.Series(statement.FieldGrossProfit))
}

// DebtServiceCoverage is operatingIncome / |interestExpense|. Statements
// report interest expense as a negative line item; coverage uses its
// magnitude.
func DebtServiceCoverage(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldOperatingIncome).
		Div(rec.Series(statement.FieldInterestExpense).Abs())
}

// CashFlowToDebt is operatingCashFlow / totalLiabilities.
func CashFlowToDebt(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldOperatingCashFlow).
		Div(rec.Series(statement.FieldTotalLiabilities))
}

// WorkingCapitalToDebt is workingCapital / totalLiabilities, reusing the
// unrounded working capital series.
func WorkingCapitalToDebt(rec *statement.Record) statement.Series {
	return WorkingCapital(rec).
		Div(rec.Series(statement.FieldTotalLiabilities))
}

// TimesInterestEarned is ebit / |interestExpense|.
func TimesInterestEarned(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldEBIT).
		Div(rec.Series(statement.FieldInterestExpense).Abs())
}
