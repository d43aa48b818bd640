package source

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrjoshuak/wpget/types"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func testOptions(client *http.Client, logs *bytes.Buffer) types.Options {
	opts := types.DefaultOptions()
	opts.HTTPClient = client
	if logs != nil {
		opts.Logger = zerolog.New(logs)
	}
	return opts
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		title string
		want  string
	}{
		{name: "spaces become underscores", base: types.DefaultBaseURL, title: "Foo Bar", want: "https://en.wikipedia.org/wiki/Foo_Bar"},
		{name: "single word", base: types.DefaultBaseURL, title: "Paris", want: "https://en.wikipedia.org/wiki/Paris"},
		{name: "base without trailing slash", base: "https://de.wikipedia.org/wiki", title: "Berlin Mitte", want: "https://de.wikipedia.org/wiki/Berlin_Mitte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveURL(tt.base, tt.title); got != tt.want {
				t.Errorf("ResolveURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_FileNeverFetches(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Foo Bar.html")
	if err := os.WriteFile(path, []byte("<p>saved</p>"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		t.Errorf("unexpected request to %s", req.URL)
		return nil, errors.New("network disabled")
	})}

	src, err := NewResolver(testOptions(client, nil)).Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src.Kind != KindFile || src.Location != path {
		t.Errorf("unexpected source %v %q", src.Kind, src.Location)
	}
	if string(src.Body) != "<p>saved</p>" {
		t.Errorf("unexpected body %q", src.Body)
	}
}

func TestResolve_DirectoryIsNotAFile(t *testing.T) {
	t.Parallel()

	var requested string
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		requested = req.URL.String()
		return nil, errors.New("network disabled")
	})}

	dir := t.TempDir()
	_, err := NewResolver(testOptions(client, nil)).Resolve(context.Background(), dir)
	if !types.IsRetrievalError(err) {
		t.Fatalf("expected retrieval error, got %v", err)
	}
	if !strings.HasPrefix(requested, types.DefaultBaseURL) {
		t.Errorf("directory should be treated as a title, requested %q", requested)
	}
}

func TestResolve_TitleAndURL(t *testing.T) {
	t.Parallel()

	type seen struct{ path, userAgent string }
	requests := make(chan seen, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- seen{path: r.URL.Path, userAgent: r.Header.Get("User-Agent")}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>remote</p>"))
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	opts := testOptions(srv.Client(), &logs)
	opts.BaseURL = srv.URL + "/wiki/"
	r := NewResolver(opts)

	src, err := r.Resolve(context.Background(), "Foo Bar")
	if err != nil {
		t.Fatalf("Resolve(title): %v", err)
	}
	if src.Kind != KindTitle || src.Location != srv.URL+"/wiki/Foo_Bar" {
		t.Errorf("unexpected source %v %q", src.Kind, src.Location)
	}
	first := <-requests
	if first.path != "/wiki/Foo_Bar" {
		t.Errorf("requested path %q", first.path)
	}
	if first.userAgent != types.DefaultUserAgent {
		t.Errorf("User-Agent = %q", first.userAgent)
	}
	if src.ContentType != "text/html; charset=utf-8" || string(src.Body) != "<p>remote</p>" {
		t.Errorf("unexpected response %q %q", src.ContentType, src.Body)
	}
	if !strings.Contains(logs.String(), "GET "+srv.URL+"/wiki/Foo_Bar 200") {
		t.Errorf("status line not logged: %s", logs.String())
	}

	src, err = r.Resolve(context.Background(), srv.URL+"/w/index.php?title=Foo")
	if err != nil {
		t.Fatalf("Resolve(url): %v", err)
	}
	if src.Kind != KindURL || src.Location != srv.URL+"/w/index.php?title=Foo" {
		t.Errorf("URL should be used verbatim, got %v %q", src.Kind, src.Location)
	}
	if second := <-requests; second.path != "/w/index.php" {
		t.Errorf("requested path %q", second.path)
	}
	if len(requests) != 0 {
		t.Errorf("unexpected extra requests")
	}
}

func TestFetch_Non200(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusServiceUnavailable},
		{name: "other 2xx", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			var logs bytes.Buffer
			body, _, err := NewResolver(testOptions(srv.Client(), &logs)).Fetch(context.Background(), srv.URL)
			if body != nil {
				t.Errorf("expected no body, got %q", body)
			}
			if !types.IsRetrievalError(err) {
				t.Fatalf("expected retrieval error, got %v", err)
			}
			if got := types.StatusCode(err); got != tt.status {
				t.Errorf("StatusCode = %d, want %d", got, tt.status)
			}
			if !errors.Is(err, types.ErrUnexpectedStatus) {
				t.Errorf("expected ErrUnexpectedStatus, got %v", err)
			}
			if hits.Load() != 1 {
				t.Errorf("expected a single request, got %d", hits.Load())
			}
			if !strings.Contains(logs.String(), "GET "+srv.URL) {
				t.Errorf("status line not logged before failing: %s", logs.String())
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	opts := testOptions(srv.Client(), nil)
	opts.Timeout = 50 * time.Millisecond

	_, _, err := NewResolver(opts).Fetch(context.Background(), srv.URL)
	if !types.IsRetrievalError(err) {
		t.Fatalf("expected retrieval error, got %v", err)
	}
	if types.StatusCode(err) != 0 {
		t.Errorf("transport failure should carry no status, got %d", types.StatusCode(err))
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, err := NewResolver(testOptions(nil, nil)).Fetch(context.Background(), url)
	if !types.IsRetrievalError(err) {
		t.Fatalf("expected retrieval error, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindFile: "file", KindURL: "url", KindTitle: "title", Kind(9): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
