package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// pageShell wraps the converted report body in a standalone page. Styling
// stays minimal: bordered tables, readable width.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
table { border-collapse: collapse; margin: 1rem 0; width: 100%; }
th, td { border: 1px solid #c5c9d3; padding: 0.4rem 0.7rem; text-align: right; }
th:first-child, td:first-child { text-align: left; }
th { background: #eef1f6; }
h1 { border-bottom: 2px solid #1a1a2e; padding-bottom: 0.3rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// RenderHTML renders the document (and any appendices) to a standalone HTML
// page by converting the markdown form with goldmark.
func RenderHTML(doc *Document, opts Options) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithXHTML()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(doc, opts)), &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageShell)
	if err != nil {
		return "", fmt.Errorf("parsing page template: %w", err)
	}

	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: fmt.Sprintf("Financial Ratio Analysis: %s", doc.Ticker),
		Body:  template.HTML(body.String()),
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return out.String(), nil
}
