package skedda

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each HTTP request/response pair for troubleshooting
// upstream integration issues (session headers not taking, envelope drift
// between server versions, unexpected statuses).
//
// Enable with SKEDDA_DEBUG=true or DEBUG=true. Dumps include session
// headers and full bodies, so keep it out of production log pipelines.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// SKEDDA_DEBUG targets this SDK alone; DEBUG piggybacks on broader
// application debugging. Both must be the literal string "true".
func debugLoggingRequested() bool {
	return os.Getenv("SKEDDA_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
