/*
Package wpget fetches a Wikipedia article and extracts its body, without going
through the MediaWiki API.

The article may be given as a title, a URL or the path of a saved HTML page.
The page is parsed with a tolerant HTML5 parser, the content region is located
with a fixed structural query (by default the element with id
"mw-content-text"), and its children are serialized according to a Policy.

Basic Usage:

	import "github.com/mrjoshuak/wpget"

	g, err := wpget.New()
	if err != nil {
		// Handle error
	}

	// Lead paragraphs as plain text
	text, err := g.Article(ctx, "Foo Bar", wpget.Policy{Lead: true, Strip: true})

Output modes:

  - Full content region as HTML (the zero Policy)
  - Lead paragraphs only, stopping at the first heading (Lead)
  - Text content with markup removed (Strip)
  - Epedia: a single line of lead text with citation markers removed and
    paragraphs separated by " ¶ " (Condensed; implies Lead and Strip)
  - Markdown conversion of any of the above (Markdown)

Errors are *Error values whose Kind is RetrievalError, ParseError or
NotFoundError; use IsRetrievalError, IsParseError and IsNotFoundError to
tell them apart.
*/
package wpget
