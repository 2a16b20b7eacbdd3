package render

import (
	"bytes"
	"fmt"
	"html/template"

	"ragview/internal/api"
)

// Display caps. Longer lists are cut with a note stating the total.
const (
	ParagraphLimit = 50
	LinkLimit      = 100
)

var fragmentTmpl = template.Must(template.New("fragments").Parse(fragmentText))

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragmentTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// ChatBubble renders one chat message. Body is already-rendered safe
// HTML (see Markdown); everything else is escaped by the template.
func ChatBubble(kind string, body template.HTML, sources []api.QuerySource) template.HTML {
	out, err := execute("chat_bubble", struct {
		Kind    string
		Body    template.HTML
		Sources []api.QuerySource
	}{kind, body, sources})
	if err != nil {
		return template.HTML("")
	}
	return out
}

// SourceList renders the indexed-source list, or an empty-state
// placeholder when there are none.
func SourceList(sources []api.Source) template.HTML {
	out, err := execute("source_list", sources)
	if err != nil {
		return template.HTML("")
	}
	return out
}

// ErrorPanel renders the scrape-mode error panel.
func ErrorPanel(message string) template.HTML {
	out, err := execute("error_panel", message)
	if err != nil {
		return template.HTML("")
	}
	return out
}

type metaField struct {
	Label, Value string
}

type headingGroup struct {
	Tag   string
	Items []string
}

type linkList struct {
	Label string
	Links []api.Link
	Note  string
}

type scrapeView struct {
	Stats         api.ScrapeStats
	Meta          []metaField
	HeadingGroups []headingGroup
	Paragraphs    []string
	ParagraphNote string
	Images        []api.Image
	LinkLists     []linkList
	Tables        []api.Table
}

// orNA substitutes the literal N/A marker for absent metadata fields.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

func buildScrapeView(res *api.ScrapeResult) scrapeView {
	v := scrapeView{
		Stats: res.Stats,
		Meta: []metaField{
			{"Title", orNA(res.Metadata.Title)},
			{"Description", orNA(res.Metadata.Description)},
			{"Keywords", orNA(res.Metadata.Keywords)},
			{"Author", orNA(res.Metadata.Author)},
		},
		Images: res.Images,
		Tables: res.Tables,
	}

	for _, tag := range headingTags {
		if items := res.Text.Headings[tag]; len(items) > 0 {
			v.HeadingGroups = append(v.HeadingGroups, headingGroup{Tag: tag, Items: items})
		}
	}

	v.Paragraphs = res.Text.Paragraphs
	if total := len(v.Paragraphs); total > ParagraphLimit {
		v.Paragraphs = v.Paragraphs[:ParagraphLimit]
		v.ParagraphNote = fmt.Sprintf("Showing %d of %d paragraphs", ParagraphLimit, total)
	}

	v.LinkLists = []linkList{
		capLinks("Internal", res.Links.Internal),
		capLinks("External", res.Links.External),
	}
	return v
}

func capLinks(label string, links []api.Link) linkList {
	l := linkList{Label: label, Links: links}
	if total := len(links); total > LinkLimit {
		l.Links = links[:LinkLimit]
		l.Note = fmt.Sprintf("Showing %d of %d links", LinkLimit, total)
	}
	return l
}

// ScrapeResultHTML renders the full scrape results panel: stats,
// metadata, headings, paragraphs, images, links and tables, in that
// order. All text goes through template escaping.
func ScrapeResultHTML(res *api.ScrapeResult) (template.HTML, error) {
	return execute("scrape_result", buildScrapeView(res))
}

const fragmentText = `
{{define "chat_bubble" -}}
<div class="message {{.Kind}}">
  <div class="message-body">{{.Body}}</div>
  {{- if .Sources}}
  <ol class="message-sources">
    {{- range .Sources}}
    <li><a href="{{.URL}}" target="_blank" rel="noopener">{{if .Title}}{{.Title}}{{else}}{{.URL}}{{end}}</a></li>
    {{- end}}
  </ol>
  {{- end}}
</div>
{{- end}}

{{define "source_list" -}}
{{- if . -}}
<ul class="source-list">
  {{- range .}}
  <li class="source-item" data-url="{{.URL}}">
    <span class="source-title">{{if .Title}}{{.Title}}{{else}}Unknown{{end}}</span>
    <span class="source-url">{{.URL}}</span>
    <span class="source-chunks">{{.Chunks}} chunks</span>
    <button class="source-delete" data-url="{{.URL}}">Delete</button>
  </li>
  {{- end}}
</ul>
{{- else -}}
<p class="empty">No sources indexed yet</p>
{{- end}}
{{- end}}

{{define "error_panel" -}}
<div class="error-panel">Error: {{.}}</div>
{{- end}}

{{define "scrape_result" -}}
<div class="results">
  <section class="stats">
    <div class="stat"><span class="stat-value">{{.Stats.TotalHeadings}}</span><span class="stat-label">Headings</span></div>
    <div class="stat"><span class="stat-value">{{.Stats.TotalParagraphs}}</span><span class="stat-label">Paragraphs</span></div>
    <div class="stat"><span class="stat-value">{{.Stats.TotalImages}}</span><span class="stat-label">Images</span></div>
    <div class="stat"><span class="stat-value">{{.Stats.TotalLinks}}</span><span class="stat-label">Links</span></div>
    <div class="stat"><span class="stat-value">{{.Stats.TotalTables}}</span><span class="stat-label">Tables</span></div>
  </section>
  <section class="metadata">
    <dl>
      {{- range .Meta}}
      <dt>{{.Label}}</dt><dd>{{.Value}}</dd>
      {{- end}}
    </dl>
  </section>
  <section class="headings" data-tab="text">
    {{- if .HeadingGroups}}
    {{- range .HeadingGroups}}
    <div class="heading-group">
      <h4>{{.Tag}}</h4>
      <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{- end}}
    {{- else}}
    <p class="empty">No headings found</p>
    {{- end}}
  </section>
  <section class="paragraphs" data-tab="text">
    {{- range .Paragraphs}}
    <p>{{.}}</p>
    {{- end}}
    {{- if .ParagraphNote}}
    <p class="note">{{.ParagraphNote}}</p>
    {{- end}}
  </section>
  <section class="images" data-tab="images">
    {{- range .Images}}
    <figure>
      <img src="{{.URL}}" alt="{{.Alt}}" data-fallback="Image unavailable: {{.URL}}" onerror="this.replaceWith(this.dataset.fallback)">
      {{- if .Alt}}<figcaption>{{.Alt}}</figcaption>{{end}}
    </figure>
    {{- end}}
  </section>
  <section class="links" data-tab="links">
    {{- range .LinkLists}}
    <div class="link-group">
      <h4>{{.Label}}</h4>
      <ul>
        {{- range .Links}}
        <li><a href="{{.URL}}" target="_blank" rel="noopener">{{if .Text}}{{.Text}}{{else}}{{.URL}}{{end}}</a></li>
        {{- end}}
      </ul>
      {{- if .Note}}<p class="note">{{.Note}}</p>{{end}}
    </div>
    {{- end}}
  </section>
  <section class="tables" data-tab="tables">
    {{- range .Tables}}
    <table>
      {{- if .Headers}}
      <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
      {{- end}}
      <tbody>
        {{- range .Rows}}
        <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
        {{- end}}
      </tbody>
    </table>
    {{- end}}
  </section>
</div>
{{- end}}
`
