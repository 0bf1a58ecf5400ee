package ratio

import "github.com/finlens/ratioscope/internal/statement"

// Statement values arrive in thousands. The 1000 factor in the working
// capital family converts to absolute currency where the formula mixes a
// thousands operand with an absolute one.
const thousands = 1000

// CashRatio is cash / currentLiabilities.
func CashRatio(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldCash).
		Div(rec.Series(statement.FieldCurrentLiabilities))
}

// QuickRatio is (cash + shortTermInvestments + netReceivables) / currentLiabilities.
func QuickRatio(rec *statement.Record) statement.Series {
	quick := rec.Series(statement.FieldCash).
		Add(rec.Series(statement.FieldShortTermInvestments)).
		Add(rec.Series(statement.FieldNetReceivables))
	return quick.Div(rec.Series(statement.FieldCurrentLiabilities))
}

// CurrentRatio is currentAssets / currentLiabilities.
func CurrentRatio(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldCurrentAssets).
		Div(rec.Series(statement.FieldCurrentLiabilities))
}

// WorkingCapital is 1000 * (currentAssets - currentLiabilities). The five
// dependent ratios below consume this value unrounded; display rounding
// happens only in the report.
func WorkingCapital(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldCurrentAssets).
		Sub(rec.Series(statement.FieldCurrentLiabilities)).
		Scale(thousands)
}

// CashToWorkingCapital is 1000 * cash / workingCapital.
func CashToWorkingCapital(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldCash).
		Scale(thousands).
		Div(WorkingCapital(rec))
}

// InventoryToWorkingCapital is 1000 * inventory / workingCapital.
func InventoryToWorkingCapital(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldInventory).
		Scale(thousands).
		Div(WorkingCapital(rec))
}

// SalesToWorkingCapital is 1000 * sales / workingCapital.
func SalesToWorkingCapital(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldSales).
		Scale(thousands).
		Div(WorkingCapital(rec))
}

// SalesToCurrentAssets is sales / currentAssets.
func SalesToCurrentAssets(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldSales).
		Div(rec.Series(statement.FieldCurrentAssets))
}
