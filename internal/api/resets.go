package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

// SendPasswordReset asks the fixed app host to email a reset link. returnURL
// points the user back at the venue's booking page. Accepts {200,201,204}.
func SendPasswordReset(ctx context.Context, httpClient *http.Client, resetBaseURL string, sess *session.Context, email, returnURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(types.LoginResetEnvelope{
		LoginResetRequest: types.LoginResetRequest{
			Username:  email,
			ReturnURL: returnURL,
		},
	})
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/loginresetrequests", resetBaseURL)
	req, err := newRequest(ctx, http.MethodPost, u, bytes.NewReader(body), sess)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !accepted(resp.StatusCode, http.StatusOK, http.StatusCreated, http.StatusNoContent) {
		return apperrors.RemoteWrite("password reset", resp.StatusCode, readBody(resp))
	}
	return nil
}
