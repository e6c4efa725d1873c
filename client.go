// Package skedda is a Go SDK for the Skedda venue-booking REST API, built
// for workflow hosts that drive it one stateless invocation at a time: the
// host supplies credentials or a previously established session, the SDK
// performs the sequential upstream calls an operation needs, and the result
// comes back as a JSON-serializable record or list.
//
// Timeouts, retries, and cancellation belong to the host's transport layer.
// The SDK never retries; transport failures propagate unmodified.
package skedda

import (
	"context"
	"net/http"
	"time"

	"github.com/venuesync/skedda-go/internal/api"
)

const (
	// DefaultAuthBaseURL is the dedicated authentication host performing the
	// credential exchange.
	DefaultAuthBaseURL = "https://skedda-login.amir-b8f.workers.dev"

	// DefaultResetBaseURL is the fixed app host serving password-reset
	// requests for every venue.
	DefaultResetBaseURL = "https://app.skedda.com"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	domain       string
	baseURL      string
	authBaseURL  string
	resetBaseURL string
	http         *http.Client
	sess         *Session
	now          func() time.Time
}

// New constructs a Client for the given per-connection venue domain
// (e.g. "myvenue.skedda.com"). Additional options can be provided via
// functional arguments. The client carries no session until Authenticate or
// WithSession supplies one; the credential exchange itself runs sessionless.
func New(domain string, opts ...Option) *Client {
	if domain == "" {
		panic("domain cannot be empty")
	}

	c := &Client{
		domain:       domain,
		baseURL:      "https://" + domain,
		authBaseURL:  DefaultAuthBaseURL,
		resetBaseURL: DefaultResetBaseURL,
		http:         &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	return c
}

// Authenticate exchanges credentials for a new session, installs it on the
// client, and returns it so hosts can persist it for later invocations.
func (c *Client) Authenticate(ctx context.Context, username, password string) (sess *Session, err error) {
	defer func() { recordOp("authenticate", err) }()
	sess, err = api.Login(ctx, c.http, c.authBaseURL, username, password, c.domain, c.now())
	if err != nil {
		return nil, err
	}
	sessionsEstablishedTotal.Inc()
	c.sess = sess
	return sess, nil
}

// UseSession installs a previously established session, replacing any
// current one.
func (c *Client) UseSession(sess *Session) { c.sess = sess }

// Session returns the currently installed session, or nil.
func (c *Client) Session() *Session { return c.sess }

// Venue fetches the venue settings and the venue's user roster. A successful
// call proves the session is usable, so hosts run it as the connection test;
// the settings also feed the creation defaults.
func (c *Client) Venue(ctx context.Context) (out *WebsResponse, err error) {
	defer func() { recordOp("venue", err) }()
	return api.Webs(ctx, c.http, c.baseURL, c.sess)
}
