package types

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Defaults used when no option overrides them.
const (
	// DefaultBaseURL is prefixed to bare article titles.
	DefaultBaseURL = "https://en.wikipedia.org/wiki/"

	// DefaultXPath selects the element wrapping the article body.
	DefaultXPath = `//*[@id="mw-content-text"]`

	// ParserOutputXPath selects the parser output wrapper that current
	// MediaWiki releases nest inside mw-content-text.
	ParserOutputXPath = `//*[@id="mw-content-text"]/div[contains(concat(" ", normalize-space(@class), " "), " mw-parser-output ")]`

	// DefaultUserAgent identifies requests as a desktop Chrome browser.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_5) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/45.0.2454.85 Safari/537.36"

	// DefaultTimeout bounds the single HTTP request.
	DefaultTimeout = 30 * time.Second
)

// Options configures a Getter. Options are fixed at construction and shared
// by every Article call made with that Getter.
type Options struct {
	Timeout    time.Duration  // Timeout for the HTTP GET
	UserAgent  string         // User-Agent header sent with the GET
	BaseURL    string         // Prefix for bare titles
	XPath      string         // XPath locating the content region
	Selector   string         // CSS selector locating the content region; takes precedence over XPath
	HTTPClient *http.Client   // Client used for the GET; nil means a client built from Timeout
	Logger     zerolog.Logger // Diagnostic logger
}

// DefaultOptions returns the default options: a 30 second timeout, a desktop
// browser user agent, English Wikipedia as the title base and the
// mw-content-text container as the content region. Logging is disabled.
func DefaultOptions() Options {
	return Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		BaseURL:   DefaultBaseURL,
		XPath:     DefaultXPath,
		Logger:    zerolog.Nop(),
	}
}
