package ratio

import (
	"testing"

	"github.com/finlens/ratioscope/internal/statement"
)

func TestTimesInterestEarnedUsesInterestMagnitude(t *testing.T) {
	set := sampleSet()
	// Two periods: interestExpense=[-40,-30], ebit=[200,150].
	set.Balance.Rows = set.Balance.Rows[:2]
	set.Income.Rows = set.Income.Rows[:2]
	set.CashFlow.Rows = set.CashFlow.Rows[:2]
	rec := buildRecord(t, set)

	assertSeries(t, "Times Interest Earned", TimesInterestEarned(rec), statement.Series{5.0, 5.0})
}

func TestDebtServiceCoverage(t *testing.T) {
	rec := buildRecord(t, sampleSet())

	assertSeries(t, "Debt Service Coverage", DebtServiceCoverage(rec),
		statement.Series{300.0 / 40, 250.0 / 30, 200.0 / 25})
}

func TestLeverageRatios(t *testing.T) {
	rec := buildRecord(t, sampleSet())

	assertSeries(t, "Debt Ratio", DebtRatio(rec),
		statement.Series{600.0 / 1000, 550.0 / 900, 500.0 / 800})
	assertSeries(t, "Equity Ratio", EquityRatio(rec),
		statement.Series{400.0 / 1000, 350.0 / 900, 300.0 / 800})
	assertSeries(t, "Debt to Equity", DebtToEquity(rec),
		statement.Series{600.0 / 400, 550.0 / 350, 500.0 / 300})
	assertSeries(t, "Debt to Income", DebtToIncome(rec),
		statement.Series{600.0 / 800, 550.0 / 700, 500.0 / 600})
}

func TestCashFlowAndWorkingCapitalToDebt(t *testing.T) {
	rec := buildRecord(t, sampleSet())

	assertSeries(t, "Cash Flow to Debt", CashFlowToDebt(rec),
		statement.Series{260.0 / 600, 230.0 / 550, 200.0 / 500})
	assertSeries(t, "Working Capital to Debt", WorkingCapitalToDebt(rec),
		statement.Series{250000.0 / 600, 150000.0 / 550, 120000.0 / 500})
}

func TestZeroEquityUndefinesDebtToEquityCell(t *testing.T) {
	set := sampleSet()
	set.Balance.Rows[1][9] = "0"
	rec := buildRecord(t, set)

	got := DebtToEquity(rec)
	if !statement.IsUndefined(got[1]) {
		t.Errorf("expected undefined over zero equity, got %v", got[1])
	}
	if statement.IsUndefined(got[0]) || statement.IsUndefined(got[2]) {
		t.Errorf("expected other positions unaffected, got %v", got)
	}
}
