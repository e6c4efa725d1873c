package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

// SearchUsers runs the paginated substring search for email. The upstream
// search is not authoritative; callers must filter for exactness.
func SearchUsers(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, email string) ([]types.VenueUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("fromInclusive", "0")
	params.Set("s", email)
	params.Set("sortDirection", "0")
	params.Set("sortProperty", "1")
	params.Set("toExclusive", "50")
	params.Set("totalMatches", "0")
	u := fmt.Sprintf("%s/venueuserslists?%s", baseURL, params.Encode())
	req, err := newRequest(ctx, http.MethodGet, u, nil, sess)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search users: status %d", resp.StatusCode)
	}

	var lr types.UserListResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return lr.Venueusers, nil
}

// FindUserByEmail searches and filters for an exact case-insensitive match
// on the username field. Returns (nil, nil) when no exact match exists, even
// if the substring search returned candidates. Multiple exact matches should
// not occur under the upstream's uniqueness model; the first in returned
// order wins deterministically.
func FindUserByEmail(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, email string) (*types.VenueUser, error) {
	users, err := SearchUsers(ctx, httpClient, baseURL, sess, email)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetUser retrieves a user by id. The record may arrive under a venueuser
// envelope or as the bare body.
func GetUser(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, userID string) (*types.VenueUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/venueusers/%s", baseURL, userID)
	req, err := newRequest(ctx, http.MethodGet, u, nil, sess)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFoundf("user %s not found", userID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get user: status %d", resp.StatusCode)
	}

	body := readBody(resp)
	var env types.UserEnvelopeResponse
	if err := json.Unmarshal([]byte(body), &env); err == nil && env.Venueuser != nil {
		return env.Venueuser, nil
	}
	var user types.VenueUser
	if err := json.Unmarshal([]byte(body), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser transmits a complete replacement record under the venueuser
// envelope. Accepts {200,201}; anything else is a RemoteWrite error carrying
// the status and raw body verbatim.
func UpdateUser(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, userID string, user types.VenueUser) (types.VenueUser, error) {
	if err := ctx.Err(); err != nil {
		return types.VenueUser{}, err
	}
	body, err := json.Marshal(types.VenueUserEnvelope{Venueuser: user})
	if err != nil {
		return types.VenueUser{}, err
	}
	u := fmt.Sprintf("%s/venueusers/%s", baseURL, userID)
	req, err := newRequest(ctx, http.MethodPut, u, bytes.NewReader(body), sess)
	if err != nil {
		return types.VenueUser{}, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return types.VenueUser{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw := readBody(resp)
	if !accepted(resp.StatusCode, http.StatusOK, http.StatusCreated) {
		return types.VenueUser{}, apperrors.RemoteWrite("update user", resp.StatusCode, raw)
	}
	return types.ExtractUser([]byte(raw))
}

// CreateUser posts a new user record under the venueuser envelope.
// Accepts {200,201}.
func CreateUser(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, user types.VenueUser) (types.VenueUser, error) {
	if err := ctx.Err(); err != nil {
		return types.VenueUser{}, err
	}
	body, err := json.Marshal(types.VenueUserEnvelope{Venueuser: user})
	if err != nil {
		return types.VenueUser{}, err
	}
	u := fmt.Sprintf("%s/venueusers", baseURL)
	req, err := newRequest(ctx, http.MethodPost, u, bytes.NewReader(body), sess)
	if err != nil {
		return types.VenueUser{}, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return types.VenueUser{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw := readBody(resp)
	if !accepted(resp.StatusCode, http.StatusOK, http.StatusCreated) {
		return types.VenueUser{}, apperrors.RemoteWrite("create user", resp.StatusCode, raw)
	}
	return types.ExtractUser([]byte(raw))
}

// ProfilePing runs the pre-create existence and deliverability check for an
// email address.
func ProfilePing(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, email string) (*types.ProfilePing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("email", email)
	params.Set("includevenueuserid", "true")
	u := fmt.Sprintf("%s/userprofilepings?%s", baseURL, params.Encode())
	req, err := newRequest(ctx, http.MethodGet, u, nil, sess)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user profile ping: status %d", resp.StatusCode)
	}

	var pr types.ProfilePingResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, err
	}
	if pr.Userprofileping == nil {
		return nil, fmt.Errorf("user profile ping: malformed response")
	}
	return pr.Userprofileping, nil
}
