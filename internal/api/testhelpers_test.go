package api

import (
	"fmt"
	"net/http"
)

// errRT is an http.RoundTripper that always returns an error (simulates
// network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// testSession is a minimal session for header assertions.
func testSessionHeaders() map[string]string {
	return map[string]string{"Cookie": "sid=test", "X-Csrf": "tok"}
}
