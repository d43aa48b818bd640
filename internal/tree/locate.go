package tree

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/wpget/types"
)

// Locator finds the content region of a document.
type Locator interface {
	// Locate returns the first node matching the locator's query, or a
	// not-found error when nothing matches.
	Locate(doc *html.Node) (*html.Node, error)

	// Query returns the query string, for diagnostics.
	Query() string
}

// XPathLocator locates the content region with an XPath expression.
type XPathLocator struct {
	raw  string
	expr *xpath.Expr
}

// NewXPathLocator compiles expr. An invalid expression is reported here so
// that it never surfaces as a missing content region.
func NewXPathLocator(expr string) (*XPathLocator, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile xpath %q: %w", expr, err)
	}
	return &XPathLocator{raw: expr, expr: compiled}, nil
}

// Locate implements Locator.
func (l *XPathLocator) Locate(doc *html.Node) (*html.Node, error) {
	if doc == nil {
		return nil, types.NewNotFoundError("XPathLocator.Locate", l.raw)
	}
	matches := htmlquery.QuerySelectorAll(doc, l.expr)
	if len(matches) == 0 {
		return nil, types.NewNotFoundError("XPathLocator.Locate", l.raw)
	}
	if n := firstInDocumentOrder(doc, matches); n != nil {
		return n, nil
	}
	return matches[0], nil
}

// firstInDocumentOrder returns the member of nodes reached first by a
// preorder walk from root. The xpath engine does not sort descendant-axis
// results, so a shallow later element can come back ahead of a nested
// earlier one.
func firstInDocumentOrder(root *html.Node, nodes []*html.Node) *html.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	set := make(map[*html.Node]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if _, ok := set[n]; ok {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(root)
}

// Query implements Locator.
func (l *XPathLocator) Query() string { return l.raw }

// SelectorLocator locates the content region with a CSS selector.
type SelectorLocator struct {
	raw     string
	matcher cascadia.Selector
}

// NewSelectorLocator compiles sel.
func NewSelectorLocator(sel string) (*SelectorLocator, error) {
	m, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", sel, err)
	}
	return &SelectorLocator{raw: sel, matcher: m}, nil
}

// Locate implements Locator.
func (l *SelectorLocator) Locate(doc *html.Node) (*html.Node, error) {
	if doc == nil {
		return nil, types.NewNotFoundError("SelectorLocator.Locate", l.raw)
	}
	match := goquery.NewDocumentFromNode(doc).FindMatcher(l.matcher).First()
	if match.Length() == 0 {
		return nil, types.NewNotFoundError("SelectorLocator.Locate", l.raw)
	}
	return match.Get(0), nil
}

// Query implements Locator.
func (l *SelectorLocator) Query() string { return l.raw }

// NewLocator returns a SelectorLocator when sel is set and an XPathLocator
// for expr otherwise.
func NewLocator(expr, sel string) (Locator, error) {
	if sel != "" {
		return NewSelectorLocator(sel)
	}
	return NewXPathLocator(expr)
}
