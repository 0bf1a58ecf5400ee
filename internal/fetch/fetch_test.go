package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const balancePage = `<html><body>
<table>
<tr><th>Period Ending</th><th>12/31/2018</th><th>12/31/2017</th></tr>
<tr><td>Current Assets</td></tr>
<tr><td>Cash And Cash Equivalents</td><td>120</td><td>100</td></tr>
<tr><td>Total Current Assets</td><td>500</td><td>450</td></tr>
<tr><td>Total Assets</td><td>1,000</td><td>900</td></tr>
</table>
</body></html>`

const incomePage = `<html><body>
<table>
<tr><th>Revenue</th><th>12/31/2018</th><th>12/31/2017</th></tr>
<tr><td>Total Revenue</td><td>2,000</td><td>1,800</td></tr>
<tr><td>Net Income</td><td>150</td><td>120</td></tr>
</table>
</body></html>`

const cashFlowPage = `<html><body>
<table>
<tr><th>Period Ending</th><th>12/31/2018</th><th>12/31/2017</th></tr>
<tr><td>Total Cash Flow From Operating Activities</td><td>260</td><td>230</td></tr>
</table>
</body></html>`

const quotePage = `<html><body>
<table>
<tr><td>Previous Close</td><td>101.25</td></tr>
<tr><td>Open</td><td>102.00</td></tr>
</table>
<table>
<tr><td>Beta (3Y Monthly)</td><td>1.20</td></tr>
<tr><td>PE Ratio (TTM)</td><td>18.44</td></tr>
</table>
<table>
<tr><td>Ignored Label</td><td>Ignored Value</td></tr>
</table>
</body></html>`

// fastConfig removes rate limiting delays from tests.
func fastConfig(baseURL string) Config {
	return Config{BaseURL: baseURL, RequestsPerSecond: 1000}
}

func statementServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("unexpected User-Agent: %s", got)
		}
		if got := r.URL.Query().Get("p"); got != "ACME" {
			t.Errorf("expected p=ACME query, got %q", got)
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/balance-sheet"):
			w.Write([]byte(balancePage))
		case strings.HasSuffix(r.URL.Path, "/financials"):
			w.Write([]byte(incomePage))
		case strings.HasSuffix(r.URL.Path, "/cash-flow"):
			w.Write([]byte(cashFlowPage))
		default:
			w.Write([]byte(quotePage))
		}
	}))
}

func TestStatementsFetchesAllThreeTables(t *testing.T) {
	srv := statementServer(t)
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL), nil)
	set, err := c.Statements(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}

	if set.Ticker != "ACME" {
		t.Errorf("expected ticker ACME, got %s", set.Ticker)
	}

	periods := set.Periods()
	if len(periods) != 2 || periods[0] != "12/31/2018" || periods[1] != "12/31/2017" {
		t.Fatalf("unexpected periods: %v", periods)
	}

	assets, ok := set.Balance.Column("Total Assets")
	if !ok {
		t.Fatal("expected Total Assets column in balance table")
	}
	if assets[0] != "1,000" || assets[1] != "900" {
		t.Errorf("unexpected Total Assets values: %v", assets)
	}

	ocf, ok := set.CashFlow.Column("Total Cash Flow From Operating Activities")
	if !ok {
		t.Fatal("expected operating cash flow column in cash flow table")
	}
	if ocf[0] != "260" {
		t.Errorf("unexpected operating cash flow: %v", ocf)
	}
}

func TestStatementsFailsWhenOnePageErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/cash-flow") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte(balancePage))
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL), nil)
	_, err := c.Statements(context.Background(), "ACME")
	if err == nil {
		t.Fatal("expected error when one statement page fails")
	}
	var httpErr *ErrHTTP
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected ErrHTTP, got %v", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", httpErr.StatusCode)
	}
}

func TestStatementsRejectsEmptyTicker(t *testing.T) {
	c := NewClient(fastConfig("http://unused"), nil)
	if _, err := c.Statements(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty ticker")
	}
}

func TestQuoteMergesSummaryTables(t *testing.T) {
	srv := statementServer(t)
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL), nil)
	quote, err := c.Quote(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	if v, ok := quote.Value("Previous Close"); !ok || v != "101.25" {
		t.Errorf("expected Previous Close 101.25, got %q (ok=%v)", v, ok)
	}

	beta, ok := quote.Beta()
	if !ok {
		t.Fatal("expected beta field to parse")
	}
	if beta != 1.20 {
		t.Errorf("expected beta 1.20, got %v", beta)
	}

	// Tables past the first two belong to other page sections.
	if _, ok := quote.Value("Ignored Label"); ok {
		t.Error("expected third table to be skipped")
	}
}

func TestQuoteWithoutTablesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>consent required</p></body></html>"))
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL), nil)
	_, err := c.Quote(context.Background(), "ACME")
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}

func TestClientServesRepeatsFromCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(quotePage))
	}))
	defer srv.Close()

	c := NewClient(fastConfig(srv.URL), nil)
	ctx := context.Background()
	if _, err := c.Quote(ctx, "ACME"); err != nil {
		t.Fatalf("first Quote: %v", err)
	}
	if _, err := c.Quote(ctx, "ACME"); err != nil {
		t.Fatalf("second Quote: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected 1 upstream hit, got %d", hits)
	}
}

func TestExtractStatementTableTransposes(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(balancePage))
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := extractStatementTable(doc)
	if err != nil {
		t.Fatalf("extractStatementTable: %v", err)
	}

	want := []string{"Period Ending", "Cash And Cash Equivalents", "Total Current Assets", "Total Assets"}
	if len(tbl.Columns) != len(want) {
		t.Fatalf("expected %d columns, got %d: %v", len(want), len(tbl.Columns), tbl.Columns)
	}
	for i, label := range want {
		if tbl.Columns[i] != label {
			t.Errorf("column %d: expected %q, got %q", i, label, tbl.Columns[i])
		}
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 period rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "12/31/2018" || tbl.Rows[1][0] != "12/31/2017" {
		t.Errorf("unexpected period cells: %v, %v", tbl.Rows[0][0], tbl.Rows[1][0])
	}
	if tbl.Rows[1][3] != "900" {
		t.Errorf("expected Total Assets 900 in second period, got %q", tbl.Rows[1][3])
	}
}

func TestExtractStatementTableSkipsSectionHeaders(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(balancePage))
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := extractStatementTable(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range tbl.Columns {
		if col == "Current Assets" {
			t.Error("section header row should not become a column")
		}
	}
}

func TestExtractStatementTableNoTable(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := extractStatementTable(doc); !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}

func TestCacheSetGet(t *testing.T) {
	c := NewCache(1 * time.Second)
	c.Set("key1", []byte("value1"))
	v, ok := c.Get("key1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(v.([]byte)) != "value1" {
		t.Fatalf("got %v, want value1", v)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(1 * time.Second)
	if _, ok := c.Get("nonexistent"); ok {
		t.Fatal("expected cache miss for nonexistent key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(1 * time.Millisecond)
	c.Set("key", "val")

	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("key"); ok {
		t.Fatal("expected cache miss after TTL expiry")
	}
}

func TestCacheFlush(t *testing.T) {
	c := NewCache(1 * time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()
	_, okA := c.Get("a")
	_, okB := c.Get("b")
	if okA || okB {
		t.Fatal("expected all entries flushed")
	}
}

func TestErrHTTPError(t *testing.T) {
	e := &ErrHTTP{StatusCode: 404, Status: "404 Not Found", URL: "https://example.com/x"}
	if e.Error() != "HTTP 404 404 Not Found: https://example.com/x" {
		t.Fatalf("unexpected error message: %s", e.Error())
	}
}
