// Package markdown converts extracted article content to markdown text.
package markdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Converter turns HTML fragments, or text that already had its tags
// stripped, into CommonMark.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// New creates a Converter. Relative links are resolved against domain when
// it is not empty. Markdown metacharacters in text are left unescaped, so
// citation markers such as "[1]" survive conversion verbatim.
func New(domain string) *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
			converter.WithEscapeMode(converter.EscapeModeDisabled),
		),
		domain: domain,
	}
}

// Convert returns the markdown rendering of s, trimmed of surrounding blank
// lines.
func (c *Converter) Convert(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	out, err := c.conv.ConvertString(s, converter.WithDomain(c.domain))
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}
