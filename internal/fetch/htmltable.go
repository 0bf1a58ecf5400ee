package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/finlens/ratioscope/pkg/models"
)

// extractStatementTable converts the first table on a statement page into a
// RawTable. Statement pages lay line items out as rows with one cell per
// period, so the table is transposed here: line-item labels become columns
// and each period becomes a row.
func extractStatementTable(doc *goquery.Document) (models.RawTable, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return models.RawTable{}, ErrNoTable
	}

	var items [][]string
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		// Single-cell rows are section headers, not line items.
		if len(cells) > 1 {
			items = append(items, cells)
		}
	})
	if len(items) == 0 {
		return models.RawTable{}, ErrNoTable
	}

	periods := len(items[0]) - 1
	tbl := models.RawTable{
		Columns: make([]string, len(items)),
		Rows:    make([][]string, periods),
	}
	for p := range tbl.Rows {
		tbl.Rows[p] = make([]string, len(items))
	}
	for i, item := range items {
		tbl.Columns[i] = item[0]
		for p := 0; p < periods; p++ {
			if p+1 < len(item) {
				tbl.Rows[p][i] = item[p+1]
			}
		}
	}
	return tbl, nil
}

// extractQuoteFields merges the label/value rows of the quote page summary
// tables into a single map. The page splits the summary across two
// two-column tables side by side.
func extractQuoteFields(doc *goquery.Document) map[string]string {
	fields := make(map[string]string)
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		if i > 1 {
			return
		}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) == 2 && cells[0] != "" {
				fields[cells[0]] = cells[1]
			}
		})
	})
	return fields
}
