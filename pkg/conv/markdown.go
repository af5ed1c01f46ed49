// Package conv renders model output into text that is safe to print and,
// more importantly, safe to hand to a speech synthesizer: no markup, no raw
// HTML, no link targets read out loud.
package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	policy     = bluemonday.NewPolicy()
)

func init() {
	// Keep only structural elements; everything decorative is stripped so
	// html2text sees clean input.
	policy.AllowElements("p", "br", "ul", "ol", "li", "blockquote", "pre", "code",
		"h1", "h2", "h3", "h4", "h5", "h6")
}

// MarkdownToPlainText converts a markdown reply into plain speakable text.
func MarkdownToPlainText(md []byte) string {
	if len(md) == 0 {
		return ""
	}

	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	sanitized := policy.SanitizeBytes(unsafeHTML)

	text, err := html2text.FromString(string(sanitized), html2text.Options{
		OmitLinks: true,
	})
	if err != nil {
		// Degrade to the raw input rather than losing the reply.
		return strings.TrimSpace(string(md))
	}

	return strings.TrimSpace(text)
}
