// Package extract fetches a page and pulls out the text of the first element
// matching a CSS selector. Failures are classified so the executor can store
// a meaningful error kind in the audit trail.
package extract

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Kind classifies extraction failures
type Kind string

// extraction failure kinds
const (
	KindTimeout  Kind = "timeout"
	KindNetwork  Kind = "network"
	KindHTTP     Kind = "http"
	KindParse    Kind = "parse"
	KindSelector Kind = "selector"
)

// Error is a classified extraction failure
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or empty string for non-extraction errors
func KindOf(err error) Kind {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

// Extractor fetches pages over HTTP and extracts selector matches
type Extractor struct {
	client    *http.Client
	userAgent string
}

// New creates an extractor with a bounded per-fetch timeout
func New(timeout time.Duration, userAgent string) *Extractor {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Pagewatch/1.0)"
	}
	return &Extractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Extract fetches urlStr and returns the trimmed text of the first element
// matching selector. A selector that matches nothing is not an error: the
// result is nil, mirroring "no value observed".
func (e *Extractor) Extract(ctx context.Context, urlStr, selector string) (*string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &Error{Kind: KindSelector, Err: fmt.Errorf("compile selector %q: %w", selector, err)}
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("parse URL: %w", err)}
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("invalid URL: %s", urlStr)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &Error{Kind: KindTimeout, Err: fmt.Errorf("fetch %s: %w", urlStr, err)}
		}
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("fetch %s: %w", urlStr, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindHTTP, Err: fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, urlStr)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: fmt.Errorf("parse document from %s: %w", urlStr, err)}
	}

	sel := doc.FindMatcher(matcher)
	if sel.Length() == 0 {
		return nil, nil
	}

	text := strings.TrimSpace(sel.First().Text())
	return &text, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
