// Package source resolves an article argument (a local file, a URL or a
// bare title) to raw HTML.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrjoshuak/wpget/types"
)

// Kind tells where a Source came from.
type Kind int

const (
	KindFile Kind = iota
	KindURL
	KindTitle
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindURL:
		return "url"
	case KindTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Source is the raw HTML of one article.
type Source struct {
	Kind        Kind
	Location    string // file path or the URL that was fetched
	ContentType string // Content-Type response header; empty for files
	Body        []byte
}

// Resolver turns an article argument into a Source.
type Resolver struct {
	client    *http.Client
	userAgent string
	baseURL   string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewResolver creates a Resolver from opts. If opts.HTTPClient is nil a
// client bounded by opts.Timeout is used.
func NewResolver(opts types.Options) *Resolver {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Resolver{
		client:    client,
		userAgent: opts.UserAgent,
		baseURL:   opts.BaseURL,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
	}
}

// ResolveURL builds the article URL for a bare title.
func ResolveURL(baseURL, title string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + strings.ReplaceAll(title, " ", "_")
}

// Resolve reads input from disk when it names an existing regular file.
// Otherwise input is fetched: verbatim when it starts with "http", or as a
// title under the base URL.
func (r *Resolver) Resolve(ctx context.Context, input string) (*Source, error) {
	if isFile(input) {
		r.logger.Debug().Str("path", input).Msg("reading local file")
		body, err := os.ReadFile(input)
		if err != nil {
			return nil, types.NewRetrievalError("Resolve", 0, err)
		}
		return &Source{Kind: KindFile, Location: input, Body: body}, nil
	}

	kind, target := KindURL, input
	if !strings.HasPrefix(input, "http") {
		kind, target = KindTitle, ResolveURL(r.baseURL, input)
	}

	body, contentType, err := r.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	return &Source{Kind: kind, Location: target, ContentType: contentType, Body: body}, nil
}

// Fetch issues a single GET for url and returns the body and its
// Content-Type. Only status 200 is a success; there are no retries.
func (r *Resolver) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", types.NewRetrievalError("Fetch", 0, fmt.Errorf("new request: %w", err))
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error().Err(err).Msgf("GET %s", url)
		return nil, "", types.NewRetrievalError("Fetch", 0, err)
	}
	defer resp.Body.Close()

	r.logger.Info().Msgf("GET %s %d", url, resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return nil, "", types.NewRetrievalError("Fetch", resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", types.NewRetrievalError("Fetch", resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
