package wpget

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrjoshuak/wpget/internal/extractors"
	"github.com/mrjoshuak/wpget/internal/markdown"
	"github.com/mrjoshuak/wpget/internal/simplifiers"
	"github.com/mrjoshuak/wpget/internal/source"
	"github.com/mrjoshuak/wpget/internal/tree"
)

// Option represents a function that modifies Options.
// This follows the functional options pattern for configuring the Getter.
type Option func(*Options)

// WithTimeout sets the timeout for the HTTP request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with the request.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		o.UserAgent = ua
	}
}

// WithBaseURL sets the URL prefix used for bare titles, for example
// "https://de.wikipedia.org/wiki/".
func WithBaseURL(base string) Option {
	return func(o *Options) {
		o.BaseURL = base
	}
}

// WithXPath sets the XPath expression that locates the content region.
func WithXPath(expr string) Option {
	return func(o *Options) {
		o.XPath = expr
	}
}

// WithSelector locates the content region with a CSS selector instead of
// the XPath expression.
func WithSelector(sel string) Option {
	return func(o *Options) {
		o.Selector = sel
	}
}

// WithHTTPClient sets the client used for the request. A nil client keeps
// the default.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Getter runs the extraction pipeline: resolve, parse, locate, extract,
// and optionally condense and convert to markdown. A Getter holds no
// per-article state.
type Getter struct {
	options  Options
	resolver *source.Resolver
	locator  tree.Locator
	md       *markdown.Converter
	logger   zerolog.Logger
}

// New creates a Getter with the provided options. It fails only when the
// content region query does not compile.
//
// Example:
//
//	g, err := wpget.New(
//	    wpget.WithTimeout(10*time.Second),
//	    wpget.WithBaseURL("https://fr.wikipedia.org/wiki/"),
//	)
func New(opts ...Option) (*Getter, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	locator, err := tree.NewLocator(options.XPath, options.Selector)
	if err != nil {
		return nil, err
	}

	return &Getter{
		options:  options,
		resolver: source.NewResolver(options),
		locator:  locator,
		md:       markdown.New(siteRoot(options.BaseURL)),
		logger:   options.Logger,
	}, nil
}

// Article resolves input (a file path, URL or title) and returns its content
// under policy.
func (g *Getter) Article(ctx context.Context, input string, policy Policy) (string, error) {
	src, err := g.resolver.Resolve(ctx, input)
	if err != nil {
		return "", err
	}
	g.logger.Debug().
		Str("kind", src.Kind.String()).
		Str("location", src.Location).
		Int("bytes", len(src.Body)).
		Msg("resolved source")

	return g.extract(bytes.NewReader(src.Body), src.ContentType, policy)
}

// ExtractFromHTML extracts content from an HTML string.
func (g *Getter) ExtractFromHTML(html string, policy Policy) (string, error) {
	return g.extract(bytes.NewReader([]byte(html)), "", policy)
}

// ExtractFromReader extracts content from an io.Reader, such as a saved
// page or an HTTP response body.
func (g *Getter) ExtractFromReader(r io.Reader, policy Policy) (string, error) {
	return g.extract(r, "", policy)
}

func (g *Getter) extract(r io.Reader, contentType string, policy Policy) (string, error) {
	policy = policy.Normalize()

	doc, err := tree.Parse(r, contentType)
	if err != nil {
		return "", err
	}

	region, err := g.locator.Locate(doc)
	if err != nil {
		return "", err
	}

	fragments := extractors.ExtractFragments(region, policy)
	g.logger.Debug().
		Str("title", tree.Title(doc)).
		Str("query", g.locator.Query()).
		Int("fragments", len(fragments)).
		Msg("extracted content region")

	content := extractors.Join(fragments, policy)
	if policy.Condensed {
		content = simplifiers.Condense(content)
	}
	if policy.Markdown {
		content, err = g.md.Convert(content)
		if err != nil {
			return "", fmt.Errorf("article: %w", err)
		}
	}
	return content, nil
}

// siteRoot returns scheme://host of base, used to absolutize links in
// markdown output.
func siteRoot(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
