package statement

// Field identifies one canonical line item, independent of how the source
// statement labels its column. The set is fixed; resolution from source
// columns happens once, when the record is built.
type Field string

const (
	FieldCash                 Field = "cash"
	FieldCurrentLiabilities   Field = "currentLiabilities"
	FieldCurrentAssets        Field = "currentAssets"
	FieldShortTermInvestments Field = "shortTermInvestments"
	FieldNetReceivables       Field = "netReceivables"
	FieldInventory            Field = "inventory"
	FieldTotalAssets          Field = "totalAssets"
	FieldTotalLiabilities     Field = "totalLiabilities"
	FieldTotalEquity          Field = "totalEquity"
	FieldSales                Field = "sales"
	FieldGrossProfit          Field = "grossProfit"
	FieldOperatingIncome      Field = "operatingIncome"
	FieldInterestExpense      Field = "interestExpense"
	FieldEBIT                 Field = "ebit"
	FieldCostOfRevenue        Field = "costOfRevenue"
	FieldNetIncome            Field = "netIncome"
	FieldOperatingCashFlow    Field = "operatingCashFlow"
)

// Statement names one of the three source tables.
type Statement string

const (
	StatementBalance  Statement = "balance-sheet"
	StatementIncome   Statement = "income-statement"
	StatementCashFlow Statement = "cash-flow"
)

// fieldSource ties a canonical field to the statement and column label it is
// read from. Labels follow Yahoo Finance's statement pages.
type fieldSource struct {
	Field     Field
	Statement Statement
	Label     string
}

// fieldSources is the full resolution table, in canonical declaration order.
var fieldSources = []fieldSource{
	{FieldCash, StatementBalance, "Cash And Cash Equivalents"},
	{FieldCurrentLiabilities, StatementBalance, "Total Current Liabilities"},
	{FieldCurrentAssets, StatementBalance, "Total Current Assets"},
	{FieldShortTermInvestments, StatementBalance, "Short Term Investments"},
	{FieldNetReceivables, StatementBalance, "Net Receivables"},
	{FieldInventory, StatementBalance, "Inventory"},
	{FieldTotalAssets, StatementBalance, "Total Assets"},
	{FieldTotalLiabilities, StatementBalance, "Total Liabilities"},
	{FieldTotalEquity, StatementBalance, "Total Stockholder Equity"},
	{FieldSales, StatementIncome, "Total Revenue"},
	{FieldGrossProfit, StatementIncome, "Gross Profit"},
	{FieldOperatingIncome, StatementIncome, "Operating Income or Loss"},
	{FieldInterestExpense, StatementIncome, "Interest Expense"},
	{FieldEBIT, StatementIncome, "Earnings Before Interest and Taxes"},
	{FieldCostOfRevenue, StatementIncome, "Cost of Revenue"},
	{FieldNetIncome, StatementIncome, "Net Income"},
	{FieldOperatingCashFlow, StatementCashFlow, "Total Cash Flow From Operating Activities"},
}

// Fields returns every canonical field in declaration order.
func Fields() []Field {
	fields := make([]Field, len(fieldSources))
	for i, src := range fieldSources {
		fields[i] = src.Field
	}
	return fields
}

// SourceOf returns the statement and column label a field is resolved from.
func SourceOf(f Field) (Statement, string, bool) {
	for _, src := range fieldSources {
		if src.Field == f {
			return src.Statement, src.Label, true
		}
	}
	return "", "", false
}
