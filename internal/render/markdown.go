// Package render turns backend responses into display fragments.
// Everything user- or backend-sourced is escaped before it can reach an
// HTML context; only fragments assembled by this package itself are
// marked trusted.
package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Chat answers support a deliberately tiny markdown dialect: line
// breaks, **bold**, *italic* and `code`. Substitutions run in that
// order; bold before italic keeps the single-asterisk pattern from
// eating `**`. No nesting or escaped delimiters.
var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	codeRe   = regexp.MustCompile("`(.+?)`")
)

// Markdown renders the chat markdown dialect into a safe HTML fragment.
// The input is escaped first, so markup in the source text always shows
// as literal characters.
func Markdown(s string) template.HTML {
	out := html.EscapeString(s)
	out = strings.ReplaceAll(out, "\n", "<br>")
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = codeRe.ReplaceAllString(out, "<code>$1</code>")
	return template.HTML(out)
}
