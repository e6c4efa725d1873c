package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

// ListEventLogs polls the activity log from start onward. start uses the
// naive local timestamp convention.
func ListEventLogs(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, start string) ([]types.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("start", start)
	u := fmt.Sprintf("%s/eventlogslists?%s", baseURL, params.Encode())
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
		return nil, fmt.Errorf("list event logs: status %d", resp.StatusCode)
	}

	var lr types.EventLogListResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return lr.Eventlogs, nil
}
