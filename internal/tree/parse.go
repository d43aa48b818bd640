// Package tree builds the document tree for a fetched article and locates
// the content region inside it.
package tree

import (
	"bytes"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/mrjoshuak/wpget/types"
)

// Parse reads r fully and builds a document tree from it. contentType is the
// Content-Type reported for the body, if any; it is combined with <meta>
// sniffing to decode the input to UTF-8 before parsing.
//
// The HTML5 parser repairs malformed and truncated markup rather than
// rejecting it, and element names are plain lowercase tag names with no
// namespace prefix. Input that is empty or whitespace only is a parse error.
func Parse(r io.Reader, contentType string) (*html.Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, types.WrapParseError(err, "Parse")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, types.WrapParseError(types.ErrEmptyDocument, "Parse")
	}

	utf8Reader, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return nil, types.WrapParseError(err, "Parse")
	}

	doc, err := htmlquery.Parse(utf8Reader)
	if err != nil {
		return nil, types.WrapParseError(err, "Parse")
	}
	return doc, nil
}

// Title returns the trimmed text of the document's <title>, or "".
func Title(doc *html.Node) string {
	n := htmlquery.FindOne(doc, "//head/title")
	if n == nil {
		return ""
	}
	return strings.TrimSpace(htmlquery.InnerText(n))
}
