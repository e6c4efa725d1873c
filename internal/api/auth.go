package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/timewindow"
	"github.com/venuesync/skedda-go/internal/types"
)

// Login exchanges credentials for a session on the dedicated authentication
// host. The request carries an EDT-tagged timestamp, a protocol requirement
// of the identity service. No session exists yet, so the request goes out
// unaugmented.
func Login(ctx context.Context, httpClient *http.Client, authBaseURL, username, password, domain string, now time.Time) (*session.Context, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(types.LoginRequest{
		Username:  username,
		Password:  password,
		Domain:    domain,
		Timezone:  "EDT",
		Timestamp: timewindow.LoginTimestamp(now),
	})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/auth/login", authBaseURL)
	req, err := newRequest(ctx, http.MethodPost, url, bytes.NewReader(body), nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !accepted(resp.StatusCode, http.StatusOK, http.StatusCreated) {
		return nil, &apperrors.Error{
			Kind:       apperrors.KindAuthentication,
			StatusCode: resp.StatusCode,
			Body:       readBody(resp),
			Message:    fmt.Sprintf("credential exchange failed (status %d)", resp.StatusCode),
		}
	}

	var lr types.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, apperrors.Authenticationf("credential exchange returned an unreadable payload: %v", err)
	}
	if len(lr.Headers) == 0 {
		return nil, apperrors.Authenticationf("credential exchange returned no session headers")
	}
	return &session.Context{Domain: domain, Headers: lr.Headers, Timezone: lr.Timezone}, nil
}
