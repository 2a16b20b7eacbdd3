package render

import (
	"strings"
	"testing"
)

func TestMarkdownDialect(t *testing.T) {
	out := string(Markdown("**a** *b* `c`\nd"))

	for _, want := range []string{"<strong>a</strong>", "<em>b</em>", "<code>c</code>", "<br>d"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestMarkdownBoldBeforeItalic(t *testing.T) {
	out := string(Markdown("**bold** and *ital*"))
	if strings.Contains(out, "<em>*bold*</em>") {
		t.Fatalf("italic pattern consumed bold markers: %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") || !strings.Contains(out, "<em>ital</em>") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestMarkdownEscapesHTML(t *testing.T) {
	out := string(Markdown(`<script>alert("x")</script>`))
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw script tag survived: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped tag, got %q", out)
	}
}

func TestMarkdownEscapesInsideFormatting(t *testing.T) {
	out := string(Markdown("**<b>**"))
	if !strings.Contains(out, "<strong>&lt;b&gt;</strong>") {
		t.Errorf("content inside bold not escaped: %q", out)
	}
}

func TestMarkdownPlainTextUntouched(t *testing.T) {
	out := string(Markdown("just words"))
	if out != "just words" {
		t.Errorf("got %q", out)
	}
}
