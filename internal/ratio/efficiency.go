package ratio

import "github.com/finlens/ratioscope/internal/statement"

// Turnover ratios divide a flow metric by the two-period average of a stock
// metric, so the oldest period is always undefined (no older period to
// average against).

// AssetTurnover is sales / avg(totalAssets).
func AssetTurnover(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldSales).
		Div(rec.Series(statement.FieldTotalAssets).TwoPeriodAverage())
}

// InventoryTurnover is costOfRevenue / avg(inventory).
func InventoryTurnover(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldCostOfRevenue).
		Div(rec.Series(statement.FieldInventory).TwoPeriodAverage())
}

// ReceivablesTurnover is sales / avg(netReceivables).
func ReceivablesTurnover(rec *statement.Record) statement.Series {
	return rec.Series(statement.FieldSales).
		Div(rec.Series(statement.FieldNetReceivables).TwoPeriodAverage())
}
