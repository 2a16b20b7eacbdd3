package render

import (
	"fmt"
	"strings"

	"ragview/internal/api"
)

// SourcesText renders the indexed-source list for the terminal.
func SourcesText(sources []api.Source) string {
	if len(sources) == 0 {
		return "No sources indexed yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d indexed source(s):\n\n", len(sources))
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = "Unknown"
		}
		fmt.Fprintf(&b, "  %d. %s\n     %s (%d chunks)\n", i+1, title, s.URL, s.Chunks)
	}
	return b.String()
}

// AnswerText renders a generated answer with its numbered citations.
func AnswerText(res *api.QueryResult) string {
	var b strings.Builder
	b.WriteString(res.Answer)
	b.WriteString("\n")
	if len(res.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for i, s := range res.Sources {
			title := s.Title
			if title == "" {
				title = s.URL
			}
			fmt.Fprintf(&b, "  [%d] %s - %s\n", i+1, title, s.URL)
		}
	}
	return b.String()
}

// ScrapeText renders a scrape result for the terminal, with the same
// list caps as the HTML renderer.
func ScrapeText(res *api.ScrapeResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "URL: %s\n\n", res.URL)
	fmt.Fprintf(&b, "Title:       %s\n", orNA(res.Metadata.Title))
	fmt.Fprintf(&b, "Description: %s\n", orNA(res.Metadata.Description))
	fmt.Fprintf(&b, "Keywords:    %s\n", orNA(res.Metadata.Keywords))
	fmt.Fprintf(&b, "Author:      %s\n\n", orNA(res.Metadata.Author))

	fmt.Fprintf(&b, "Stats: %d headings, %d paragraphs, %d images, %d links, %d tables\n\n",
		res.Stats.TotalHeadings, res.Stats.TotalParagraphs,
		res.Stats.TotalImages, res.Stats.TotalLinks, res.Stats.TotalTables)

	wroteHeading := false
	for _, tag := range headingTags {
		items := res.Text.Headings[tag]
		if len(items) == 0 {
			continue
		}
		wroteHeading = true
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(tag))
		for _, h := range items {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
	}
	if !wroteHeading {
		b.WriteString("No headings found\n")
	}
	b.WriteString("\n")

	paragraphs := res.Text.Paragraphs
	total := len(paragraphs)
	if total > ParagraphLimit {
		paragraphs = paragraphs[:ParagraphLimit]
	}
	for _, p := range paragraphs {
		fmt.Fprintf(&b, "%s\n\n", p)
	}
	if total > ParagraphLimit {
		fmt.Fprintf(&b, "(showing %d of %d paragraphs)\n\n", ParagraphLimit, total)
	}

	writeLinkGroup(&b, "Internal links", res.Links.Internal)
	writeLinkGroup(&b, "External links", res.Links.External)

	for _, tbl := range res.Tables {
		fmt.Fprintf(&b, "Table %d:\n", tbl.Index)
		if len(tbl.Headers) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(tbl.Headers, " | "))
		}
		for _, row := range tbl.Rows {
			fmt.Fprintf(&b, "  %s\n", strings.Join(row, " | "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeLinkGroup(b *strings.Builder, label string, links []api.Link) {
	if len(links) == 0 {
		return
	}
	shown := links
	note := ""
	if total := len(links); total > LinkLimit {
		shown = links[:LinkLimit]
		note = fmt.Sprintf("  (showing %d of %d links)\n", LinkLimit, total)
	}
	fmt.Fprintf(b, "%s (%d):\n", label, len(links))
	for _, l := range shown {
		text := l.Text
		if text == "" {
			text = l.URL
		}
		fmt.Fprintf(b, "  - %s - %s\n", text, l.URL)
	}
	b.WriteString(note)
	b.WriteString("\n")
}
