// Package ratio holds the financial-ratio registry: pure functions over the
// canonical statement record, grouped into the four report categories. Every
// function returns a series aligned to the record's period index; an
// undefined input cell degrades only the matching output cell.
package ratio

import "github.com/finlens/ratioscope/internal/statement"

// Definition names one ratio and the function that computes it.
type Definition struct {
	Name    string
	Compute func(*statement.Record) statement.Series
}

// Category groups ratio definitions under one report section title.
type Category struct {
	Title       string
	Definitions []Definition
}

// Categories returns the full registry. Order is fixed by declaration, both
// across categories and within each one; the report assembler must never
// reorder it.
func Categories() []Category {
	return []Category{
		{
			Title: "Liquidity Ratios",
			Definitions: []Definition{
				{"Cash Ratio", CashRatio},
				{"Quick Ratio", QuickRatio},
				{"Current Ratio", CurrentRatio},
				{"Working Capital", WorkingCapital},
				{"Cash to Working Capital", CashToWorkingCapital},
				{"Inventory to Working Capital", InventoryToWorkingCapital},
				{"Sales to Working Capital", SalesToWorkingCapital},
				{"Sales to Current Assets", SalesToCurrentAssets},
			},
		},
		{
			Title: "Solvency Ratios",
			Definitions: []Definition{
				{"Debt Ratio", DebtRatio},
				{"Equity Ratio", EquityRatio},
				{"Debt to Equity", DebtToEquity},
				{"Debt to Income", DebtToIncome},
				{"Debt Service Coverage", DebtServiceCoverage},
				{"Cash Flow to Debt", CashFlowToDebt},
				{"Working Capital to Debt", WorkingCapitalToDebt},
				{"Times Interest Earned", TimesInterestEarned},
			},
		},
		{
			Title: "Efficiency Ratios",
			Definitions: []Definition{
				{"Asset Turnover", AssetTurnover},
				{"Inventory Turnover", InventoryTurnover},
				{"Receivables Turnover", ReceivablesTurnover},
			},
		},
		{
			Title: "Profitability Ratios",
			Definitions: []Definition{
				{"Return on Assets", ReturnOnAssets},
				{"Return on Equity", ReturnOnEquity},
				{"Return on Sales", ReturnOnSales},
				{"Net Profit Margin", NetProfitMargin},
				{"Gross Profit Margin", GrossProfitMargin},
				{"Operating Margin", OperatingMargin},
			},
		},
	}
}
