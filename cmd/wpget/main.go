// Command wpget prints the content of a Wikipedia article given its title,
// its URL or the path of a saved copy of the page.
//
// Usage:
//
//	wpget "Foo Bar"                  # full content region as HTML
//	wpget "Foo Bar" -l -s            # lead paragraphs as text
//	wpget -e https://en.wikipedia.org/wiki/Foo_Bar
//	wpget saved.html -m              # markdown
//
// The article goes to stdout. The GET status line, elapsed time and any
// error go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrjoshuak/wpget"
)

func main() {
	os.Exit(run(
		context.Background(),
		os.Args[1:],
		os.Stdout,
		os.Stderr,
		nil,
	))
}

// run is split out from main so the command can be tested without spawning
// a process. It returns 0 on success, 2 for usage errors and 1 when the
// article could not be produced.
func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	httpClient *http.Client,
) int {
	fs := flag.NewFlagSet("wpget", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var epedia, lead, markdown, strip bool
	fs.BoolVar(&epedia, "e", false, "Epedia format (implies -l and -s)")
	fs.BoolVar(&epedia, "pedia", false, "Epedia format (implies -l and -s)")
	fs.BoolVar(&lead, "l", false, "lead paragraphs (summary) only")
	fs.BoolVar(&lead, "lead", false, "lead paragraphs (summary) only")
	fs.BoolVar(&markdown, "m", false, "convert content to markdown text")
	fs.BoolVar(&markdown, "markdown", false, "convert content to markdown text")
	fs.BoolVar(&strip, "s", false, "strip tags")
	fs.BoolVar(&strip, "strip", false, "strip tags")
	timeout := fs.Duration("timeout", wpget.DefaultTimeout, "Timeout for the HTTP request")
	xpathExpr := fs.String("xpath", wpget.DefaultXPath, "XPath locating the content region")
	selector := fs.String("selector", "", "CSS selector locating the content region (overrides -xpath)")
	verbose := fs.Bool("v", false, "Verbose logging")
	showVersion := fs.Bool("version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "GET Wikipedia article from title, URL or filename via HTTP\n\n")
		fmt.Fprintf(stderr, "Usage: wpget <title|url|file> [-e|-pedia] [-l|-lead] [-m|-markdown] [-s|-strip]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	positional, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		info := wpget.GetBuildInfo()
		fmt.Fprintf(stdout, "%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
		return 0
	}

	if len(positional) != 1 {
		fmt.Fprintf(stderr, "expected exactly one title, URL or filename, got %d\n", len(positional))
		fs.Usage()
		return 2
	}

	logger := newLogger(stderr, *verbose)

	g, err := wpget.New(
		wpget.WithTimeout(*timeout),
		wpget.WithXPath(*xpathExpr),
		wpget.WithSelector(*selector),
		wpget.WithHTTPClient(httpClient),
		wpget.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "wpget: %v\n", err)
		return 2
	}

	start := time.Now()
	output, err := g.Article(ctx, positional[0], wpget.Policy{
		Lead:      lead,
		Strip:     strip,
		Condensed: epedia,
		Markdown:  markdown,
	})
	defer func() {
		logger.Info().Msgf("%5.3f seconds", time.Since(start).Seconds())
	}()
	if err != nil {
		fmt.Fprintf(stderr, "wpget: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, output)
	return 0
}

// parseArgs parses flags that may appear before or after positional
// arguments and returns the positional arguments in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
