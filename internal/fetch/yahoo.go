package fetch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/finlens/ratioscope/pkg/models"
)

// Page paths under the base URL. Yahoo wants the symbol twice, once in the
// path and once in the p query parameter.
const (
	quotePagePath    = "/quote/%s?p=%s"
	balancePagePath  = "/quote/%s/balance-sheet?p=%s"
	incomePagePath   = "/quote/%s/financials?p=%s"
	cashFlowPagePath = "/quote/%s/cash-flow?p=%s"
)

// Statements fetches the balance sheet, income statement, and cash flow
// pages for a ticker concurrently and extracts their tables. Any page
// failing fails the whole fetch.
func (c *Client) Statements(ctx context.Context, ticker string) (*models.StatementSet, error) {
	symbol := normalizeSymbol(ticker)
	if symbol == "" {
		return nil, fmt.Errorf("empty ticker symbol")
	}

	set := &models.StatementSet{Ticker: symbol}

	pages := []struct {
		name string
		path string
		dst  *models.RawTable
	}{
		{"balance sheet", balancePagePath, &set.Balance},
		{"income statement", incomePagePath, &set.Income},
		{"cash flow", cashFlowPagePath, &set.CashFlow},
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, page := range pages {
		page := page
		g.Go(func() error {
			tbl, err := c.statementTable(gctx, symbol, page.path)
			if err != nil {
				return fmt.Errorf("%s: %w", page.name, err)
			}
			mu.Lock()
			*page.dst = tbl
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.log.WithField("ticker", symbol).
		WithField("periods", len(set.Periods())).
		Info("fetched financial statements")
	return set, nil
}

// Quote fetches the quote page and extracts its summary fields, including
// the beta used for the cost of capital.
func (c *Client) Quote(ctx context.Context, ticker string) (*models.Quote, error) {
	symbol := normalizeSymbol(ticker)
	if symbol == "" {
		return nil, fmt.Errorf("empty ticker symbol")
	}

	url := c.baseURL + fmt.Sprintf(quotePagePath, symbol, symbol)
	doc, err := c.getDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	fields := extractQuoteFields(doc)
	if len(fields) == 0 {
		return nil, fmt.Errorf("quote: %w", ErrNoTable)
	}

	c.log.WithField("ticker", symbol).
		WithField("fields", len(fields)).
		Debug("fetched quote summary")
	return &models.Quote{Ticker: symbol, Fields: fields}, nil
}

func (c *Client) statementTable(ctx context.Context, symbol, pathFormat string) (models.RawTable, error) {
	url := c.baseURL + fmt.Sprintf(pathFormat, symbol, symbol)
	doc, err := c.getDocument(ctx, url)
	if err != nil {
		return models.RawTable{}, err
	}
	return extractStatementTable(doc)
}

func normalizeSymbol(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
