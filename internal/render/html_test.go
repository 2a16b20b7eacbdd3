package render

import (
	"fmt"
	"strings"
	"testing"

	"ragview/internal/api"
)

func makeParagraphs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("paragraph %d", i)
	}
	return out
}

func makeLinks(n int) []api.Link {
	out := make([]api.Link, n)
	for i := range out {
		out[i] = api.Link{URL: fmt.Sprintf("https://x.example/%d", i), Text: fmt.Sprintf("link %d", i)}
	}
	return out
}

func renderResult(t *testing.T, res *api.ScrapeResult) string {
	t.Helper()
	out, err := ScrapeResultHTML(res)
	if err != nil {
		t.Fatalf("ScrapeResultHTML: %v", err)
	}
	return string(out)
}

func TestParagraphsUnderLimitAllShown(t *testing.T) {
	res := &api.ScrapeResult{Text: api.TextContent{Paragraphs: makeParagraphs(50)}}
	out := renderResult(t, res)

	if !strings.Contains(out, "<p>paragraph 49</p>") {
		t.Error("last paragraph missing")
	}
	if strings.Contains(out, "Showing") {
		t.Error("unexpected truncation note at exactly the limit")
	}
}

func TestParagraphsOverLimitTruncated(t *testing.T) {
	res := &api.ScrapeResult{Text: api.TextContent{Paragraphs: makeParagraphs(73)}}
	out := renderResult(t, res)

	if !strings.Contains(out, "<p>paragraph 49</p>") {
		t.Error("paragraph 49 should be shown")
	}
	if strings.Contains(out, "<p>paragraph 50</p>") {
		t.Error("paragraph 50 should be cut")
	}
	if !strings.Contains(out, "Showing 50 of 73 paragraphs") {
		t.Errorf("truncation note missing:\n%s", out)
	}
}

func TestLinkListsCappedIndependently(t *testing.T) {
	res := &api.ScrapeResult{Links: api.Links{
		Internal: makeLinks(150),
		External: makeLinks(10),
	}}
	out := renderResult(t, res)

	if !strings.Contains(out, "Showing 100 of 150 links") {
		t.Error("internal truncation note missing")
	}
	// The small external list must not pick up a note of its own.
	if strings.Count(out, "Showing") != 1 {
		t.Errorf("expected exactly one truncation note, got %d", strings.Count(out, "Showing"))
	}
	if !strings.Contains(out, "https://x.example/99") {
		t.Error("link 99 should be shown")
	}
	if strings.Contains(out, `href="https://x.example/100"`) {
		t.Error("link 100 should be cut")
	}
}

func TestHeadingGroupsSkipEmptyLevels(t *testing.T) {
	res := &api.ScrapeResult{Text: api.TextContent{Headings: map[string][]string{
		"h1": {"Top"},
		"h2": {},
		"h3": {"Deep"},
	}}}
	out := renderResult(t, res)

	if !strings.Contains(out, "<h4>h1</h4>") || !strings.Contains(out, "<h4>h3</h4>") {
		t.Error("expected groups for h1 and h3")
	}
	if strings.Contains(out, "<h4>h2</h4>") {
		t.Error("empty h2 level must not produce a group")
	}
	if strings.Contains(out, "No headings found") {
		t.Error("placeholder shown despite headings present")
	}
}

func TestHeadingsAllEmptyPlaceholder(t *testing.T) {
	res := &api.ScrapeResult{Text: api.TextContent{Headings: map[string][]string{"h1": {}, "h2": {}}}}
	out := renderResult(t, res)

	if strings.Count(out, "No headings found") != 1 {
		t.Errorf("expected exactly one empty-state placeholder:\n%s", out)
	}
}

func TestMetadataFallsBackToNA(t *testing.T) {
	res := &api.ScrapeResult{Metadata: api.Metadata{Title: "Page"}}
	out := renderResult(t, res)

	if !strings.Contains(out, "<dd>Page</dd>") {
		t.Error("title not rendered")
	}
	if strings.Count(out, "<dd>N/A</dd>") != 3 {
		t.Errorf("expected N/A for description, keywords and author:\n%s", out)
	}
}

func TestScrapeRenderEscapesEverywhere(t *testing.T) {
	hostile := `<script>alert(1)</script>`
	res := &api.ScrapeResult{
		Metadata: api.Metadata{Title: hostile},
		Text: api.TextContent{
			Headings:   map[string][]string{"h1": {hostile}},
			Paragraphs: []string{hostile},
		},
		Images: []api.Image{{URL: "https://x.example/i.png", Alt: hostile}},
		Links:  api.Links{External: []api.Link{{URL: "https://x.example", Text: hostile}}},
		Tables: []api.Table{{Index: 1, Headers: []string{hostile}, Rows: [][]string{{hostile}}}},
	}
	out := renderResult(t, res)

	if strings.Contains(out, "<script>") {
		t.Fatalf("raw script tag leaked into markup:\n%s", out)
	}
	// One occurrence per render site: title, heading, paragraph, alt,
	// figcaption, link text, table header, table cell.
	if strings.Count(out, "&lt;script&gt;") < 7 {
		t.Errorf("expected escaped text at every site, got %d occurrences", strings.Count(out, "&lt;script&gt;"))
	}
}

func TestTableWithoutHeaders(t *testing.T) {
	res := &api.ScrapeResult{Tables: []api.Table{{Index: 1, Rows: [][]string{{"a", "b"}}}}}
	out := renderResult(t, res)

	if strings.Contains(out, "<thead>") {
		t.Error("headerless table must not render a thead")
	}
	if !strings.Contains(out, "<td>a</td><td>b</td>") {
		t.Errorf("body row missing:\n%s", out)
	}
}

func TestSourceListEmptyState(t *testing.T) {
	out := string(SourceList(nil))
	if !strings.Contains(out, "No sources indexed yet") {
		t.Errorf("empty-state placeholder missing: %q", out)
	}

	out = string(SourceList([]api.Source{{URL: "https://a.example", Title: "<i>A</i>", Chunks: 2}}))
	if strings.Contains(out, "<i>A</i>") {
		t.Error("source title not escaped")
	}
	if !strings.Contains(out, "2 chunks") {
		t.Errorf("chunk count missing: %q", out)
	}
}

func TestChatBubbleSourcesEscaped(t *testing.T) {
	out := string(ChatBubble("assistant", Markdown("hi"), []api.QuerySource{
		{URL: "https://a.example", Title: "<b>A</b>"},
	}))
	if strings.Contains(out, "<b>A</b>") {
		t.Error("source title not escaped")
	}
	if !strings.Contains(out, `class="message assistant"`) {
		t.Errorf("kind class missing: %q", out)
	}
}

func TestErrorPanel(t *testing.T) {
	out := string(ErrorPanel("boom"))
	if !strings.Contains(out, "Error: boom") {
		t.Errorf("got %q", out)
	}
}
