// Package session holds the credential-derived state required to authorize
// calls against the venue API, and the pure function that merges it into an
// outbound request.
package session

import "net/http"

// Context is the session produced by a credential exchange. It is immutable
// once produced; re-authentication replaces it wholesale.
type Context struct {
	// Domain is the per-connection venue host, e.g. "myvenue.skedda.com".
	Domain string

	// Headers is the header set returned by the login exchange. Sent on
	// every authorized call.
	Headers map[string]string

	// Timezone is the timezone label echoed by the login exchange. When
	// present it is forwarded as an X-Timezone header on authorized calls.
	Timezone string
}

// Augment merges the session header set into h. Session headers are the
// base; caller-supplied headers win on key collision. A nil session is a
// no-op passthrough, used by the credential exchange itself before any
// session exists.
func Augment(h http.Header, sess *Context) {
	if sess == nil {
		return
	}
	for k, v := range sess.Headers {
		if h.Get(k) == "" {
			h.Set(k, v)
		}
	}
	// The upstream expects the timezone hint whenever the login exchange
	// reported one.
	if sess.Timezone != "" {
		h.Set("X-Timezone", sess.Timezone)
	}
}
