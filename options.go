package skedda

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Useful when the host
// platform owns connection pooling or injects its own transport policy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithSession installs a previously established session at construction, so
// an invocation can resume auth state handed over by the host.
func WithSession(sess *Session) Option {
	return func(c *Client) error {
		c.sess = sess
		return nil
	}
}

// WithBaseURL overrides the venue base URL derived from the domain.
// Intended for tests against local servers.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithAuthBaseURL overrides the authentication host.
func WithAuthBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("auth base URL cannot be empty")
		}
		c.authBaseURL = u
		return nil
	}
}

// WithResetBaseURL overrides the password-reset host.
func WithResetBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("reset base URL cannot be empty")
		}
		c.resetBaseURL = u
		return nil
	}
}

// WithClock overrides the time source used for window computation and the
// login timestamp. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// session headers and user data.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
