package ratio

import "github.com/finlens/ratioscope/internal/statement"

// ReturnOnAssets is netIncome / avg(totalAssets).
func ReturnOnAssets(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldNetIncome).
		Div(rec.Series(statement.FieldTotalAssets).TwoPeriodAverage())
}

// ReturnOnEquity is netIncome / totalEquity.
func ReturnOnEquity(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldNetIncome).
		Div(rec.Series(statement.FieldTotalEquity))
}

// ReturnOnSales is ebit / sales.
func ReturnOnSales(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldEBIT).
		Div(rec.Series(statement.FieldSales))
}

// NetProfitMargin is netIncome / sales.
func NetProfitMargin(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldNetIncome).
		Div(rec.Series(statement.FieldSales))
}

// GrossProfitMargin is grossProfit / sales.
func GrossProfitMargin(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldGrossProfit).
		Div(rec.Series(statement.FieldSales))
}

// OperatingMargin is operatingIncome / sales.
func OperatingMargin(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldOperatingIncome).
		Div(rec.Series(statement.FieldSales))
}
