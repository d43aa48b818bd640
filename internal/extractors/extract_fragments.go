// Package extractors walks the content region of an article and serializes
// the children selected by an extraction policy.
package extractors

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/wpget/internal/simplifiers"
	"github.com/mrjoshuak/wpget/types"
)

// Fragment separators. Condensed output needs every paragraph boundary to be
// a blank line so the condenser can turn it into a pilcrow marker.
const (
	LineSeparator      = "\n"
	ParagraphSeparator = "\n\n"
)

// ExtractFragments serializes the element children of region selected by
// policy, in document order.
//
// In lead mode the walk stops at the first child whose tag name starts with
// "h", and only <p> children before that point are kept. Otherwise every
// element child is kept, and so are comment children unless the policy
// strips markup. Text children between elements are never fragments.
func ExtractFragments(region *html.Node, policy types.Policy) []string {
	if region == nil {
		return nil
	}
	policy = policy.Normalize()

	var fragments []string
	for c := region.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
		case html.CommentNode:
			if !policy.Lead && !policy.Strip {
				fragments = append(fragments, Serialize(c, false))
			}
			continue
		default:
			continue
		}
		if policy.Lead {
			// Prefix match: <header> and <hr> end the lead as well.
			if strings.HasPrefix(c.Data, "h") {
				break
			}
			if c.Data != "p" {
				continue
			}
		}
		fragments = append(fragments, Serialize(c, policy.Strip))
	}
	return fragments
}

// Serialize renders n and its descendants. With strip set only the text
// content is returned, NFC normalized; otherwise the node's outer HTML.
func Serialize(n *html.Node, strip bool) string {
	if strip {
		return simplifiers.NormalizeUnicode(htmlquery.InnerText(n))
	}
	return htmlquery.OutputHTML(n, true)
}

// Join concatenates fragments with the separator the policy calls for.
func Join(fragments []string, policy types.Policy) string {
	if policy.Normalize().Condensed {
		return strings.Join(fragments, ParagraphSeparator)
	}
	return strings.Join(fragments, LineSeparator)
}
