// Package api contains one function per upstream endpoint. Functions are
// stateless: they take the HTTP client, the base URL, and the session
// explicitly, perform a single blocking call, and map the response onto the
// SDK's types and error taxonomy. Transport-level failures propagate
// unmodified; nothing here retries.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/venuesync/skedda-go/internal/session"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// newRequest builds an authorized JSON request. Session headers are merged
// as the base set; headers set afterwards by the caller win on collision.
func newRequest(ctx context.Context, method, url string, body io.Reader, sess *session.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	session.Augment(req.Header, sess)
	return req, nil
}

// readBody drains and returns the response body, for error reporting and
// envelope probing.
func readBody(resp *http.Response) string {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(b)
}

// accepted reports whether status is in the endpoint's success set.
func accepted(status int, set ...int) bool {
	for _, s := range set {
		if status == s {
			return true
		}
	}
	return false
}
