package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"ragview/internal/api"
)

// ScrapeMarkdown renders a scrape result as a standalone markdown
// report, suitable for saving or piping elsewhere.
func ScrapeMarkdown(res *api.ScrapeResult) string {
	var b strings.Builder

	title := orNA(res.Metadata.Title)
	fmt.Fprintf(&b, "# Scrape report: %s\n\n", title)
	fmt.Fprintf(&b, "Source: <%s>\n\n", res.URL)

	b.WriteString("## Metadata\n\n")
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Title | %s |\n", orNA(res.Metadata.Title))
	fmt.Fprintf(&b, "| Description | %s |\n", orNA(res.Metadata.Description))
	fmt.Fprintf(&b, "| Keywords | %s |\n", orNA(res.Metadata.Keywords))
	fmt.Fprintf(&b, "| Author | %s |\n\n", orNA(res.Metadata.Author))

	fmt.Fprintf(&b, "## Stats\n\n%d headings, %d paragraphs, %d images, %d links, %d tables\n\n",
		res.Stats.TotalHeadings, res.Stats.TotalParagraphs,
		res.Stats.TotalImages, res.Stats.TotalLinks, res.Stats.TotalTables)

	b.WriteString("## Headings\n\n")
	found := false
	for _, tag := range headingTags {
		for _, h := range res.Text.Headings[tag] {
			fmt.Fprintf(&b, "- **%s** %s\n", tag, h)
			found = true
		}
	}
	if !found {
		b.WriteString("No headings found\n")
	}
	b.WriteString("\n## Content\n\n")

	paragraphs := res.Text.Paragraphs
	if total := len(paragraphs); total > ParagraphLimit {
		paragraphs = paragraphs[:ParagraphLimit]
		fmt.Fprintf(&b, "_Showing %d of %d paragraphs._\n\n", ParagraphLimit, total)
	}
	for _, p := range paragraphs {
		fmt.Fprintf(&b, "%s\n\n", p)
	}

	writeMarkdownLinks(&b, "Internal links", res.Links.Internal)
	writeMarkdownLinks(&b, "External links", res.Links.External)

	for _, tbl := range res.Tables {
		fmt.Fprintf(&b, "## Table %d\n\n", tbl.Index)
		headers := tbl.Headers
		if len(headers) == 0 && len(tbl.Rows) > 0 {
			headers = make([]string, len(tbl.Rows[0]))
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(headers, " | "))
		fmt.Fprintf(&b, "|%s\n", strings.Repeat("---|", len(headers)))
		for _, row := range tbl.Rows {
			fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeMarkdownLinks(b *strings.Builder, label string, links []api.Link) {
	if len(links) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", label)
	shown := links
	if total := len(links); total > LinkLimit {
		shown = links[:LinkLimit]
		fmt.Fprintf(b, "_Showing %d of %d links._\n\n", LinkLimit, total)
	}
	for _, l := range shown {
		text := l.Text
		if text == "" {
			text = l.URL
		}
		fmt.Fprintf(b, "- [%s](%s)\n", text, l.URL)
	}
	b.WriteString("\n")
}

var reportPageTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1f2430; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d4dc; padding: 4px 8px; }
code { background: #f0f2f6; padding: 1px 4px; border-radius: 3px; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// ScrapeHTMLReport converts the markdown report into a self-contained
// HTML page via goldmark.
func ScrapeHTMLReport(res *api.ScrapeResult) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(ScrapeMarkdown(res)), &body); err != nil {
		return nil, fmt.Errorf("converting report markdown: %w", err)
	}

	var page bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: orNA(res.Metadata.Title),
		Body:  template.HTML(body.String()),
	}
	if err := reportPageTmpl.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("rendering report page: %w", err)
	}
	return page.Bytes(), nil
}
