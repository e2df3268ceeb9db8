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
	textPolicy = bluemonday.NewPolicy()
)

func init() {
	// Only what html2text knows how to lay out for a terminal
	textPolicy.AllowElements("p", "br", "b", "strong", "i", "em", "code", "pre", "blockquote",
		"ul", "ol", "li", "h1", "h2", "h3", "h4", "h5", "h6", "table", "thead", "tbody", "tr", "th", "td")
	textPolicy.AllowAttrs("href").OnElements("a")
}

// MarkdownToHTML renders md and strips everything outside the text policy.
func MarkdownToHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return string(textPolicy.SanitizeBytes(unsafeHTML))
}

// MarkdownToText renders md as plain terminal text.
func MarkdownToText(md string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}

	text, err := html2text.FromString(MarkdownToHTML([]byte(md)), html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
