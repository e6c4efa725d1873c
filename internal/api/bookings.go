package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

// ListBookings fetches the windowed booking listing. start and end are
// pre-formatted timestamps; the two consumers of this endpoint use different
// conventions (naive local for lookup, EDT offset plus a timezone param for
// the trigger) and the distinction must be preserved.
func ListBookings(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, start, end, timezone string) ([]types.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	if timezone != "" {
		params.Set("timezone", timezone)
	}
	u := fmt.Sprintf("%s/bookingslists?%s", baseURL, params.Encode())
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
		return nil, fmt.Errorf("list bookings: status %d", resp.StatusCode)
	}

	var lr types.BookingListResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return lr.Bookings, nil
}

// UpdateBooking transmits a full replacement body for the booking. The body
// must already have the forbidden fields stripped. Accepts {200,201}.
func UpdateBooking(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, bookingID string, booking types.Booking) (types.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(types.BookingEnvelope{Booking: booking})
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/bookings/%s", baseURL, bookingID)
	req, err := newRequest(ctx, http.MethodPut, u, bytes.NewReader(body), sess)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw := readBody(resp)
	if !accepted(resp.StatusCode, http.StatusOK, http.StatusCreated) {
		return nil, apperrors.RemoteWrite("update booking", resp.StatusCode, raw)
	}

	var env types.BookingEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}

// DeleteBooking removes a booking. Accepts {200,201,204}.
func DeleteBooking(ctx context.Context, httpClient *http.Client, baseURL string, sess *session.Context, bookingID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/bookings/%s", baseURL, bookingID)
	req, err := newRequest(ctx, http.MethodDelete, u, nil, sess)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !accepted(resp.StatusCode, http.StatusOK, http.StatusCreated, http.StatusNoContent) {
		return apperrors.RemoteWrite("delete booking", resp.StatusCode, readBody(resp))
	}
	return nil
}
