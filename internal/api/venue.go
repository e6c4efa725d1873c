package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

// Webs fetches the venue settings. Doubles as the connection test: a
// successful response proves the session is usable.
func Webs(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context) (*types.WebsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/webs", baseURL)
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
		return nil, fmt.Errorf("venue settings: status %d", resp.StatusCode)
	}

	var wr types.WebsResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, err
	}
	return &wr, nil
}
