package skedda

import (
	"context"

	"github.com/venuesync/skedda-go/internal/api"
	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/timewindow"
)

// UpdateBookingPayment sets a booking's payment status. The upstream has no
// direct-by-id booking fetch, so the record is located by scanning a bounded
// window (start of the previous day through 90 days later at end of day,
// naive local timestamps), then replaced in full with the forbidden fields
// stripped and the new status overlaid.
func (c *Client) UpdateBookingPayment(ctx context.Context, bookingID string, status PaymentStatus) (out Booking, err error) {
	defer func() { recordOp("update_booking", err) }()
	if bookingID == "" {
		return nil, apperrors.Validationf("booking id is required")
	}

	start, end := timewindow.BookingWindow(c.now())
	startStr, endStr := timewindow.Naive(start), timewindow.Naive(end)
	bookings, err := api.ListBookings(ctx, c.http, c.baseURL, c.sess, startStr, endStr, "")
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperrors.NotFoundf("no bookings found between %s and %s", startStr, endStr)
	}

	var target Booking
	for _, b := range bookings {
		if b.ID() == bookingID {
			target = b
			break
		}
	}
	if target == nil {
		return nil, apperrors.NotFoundf("booking %s not found", bookingID)
	}

	return api.UpdateBooking(ctx, c.http, c.baseURL, c.sess, bookingID, target.ReplacementBody(status))
}

// DeleteBooking removes a booking by id.
func (c *Client) DeleteBooking(ctx context.Context, bookingID string) (err error) {
	defer func() { recordOp("delete_booking", err) }()
	if bookingID == "" {
		return apperrors.Validationf("booking id is required")
	}
	return api.DeleteBooking(ctx, c.http, c.baseURL, c.sess, bookingID)
}

// NewBookings is the new-booking trigger poll: the forward window from one
// minute out to 90 days out, in the explicit EDT-offset convention with the
// timezone parameter attached. Distinct on purpose from the naive format the
// lookup window uses; the two endpoints have only been observed accepting
// their respective formats.
func (c *Client) NewBookings(ctx context.Context) (out []Booking, err error) {
	defer func() { recordOp("new_bookings", err) }()
	start, end := timewindow.TriggerWindow(c.now())
	bookings, err := api.ListBookings(ctx, c.http, c.baseURL, c.sess,
		timewindow.Offset(start), timewindow.Offset(end), "EDT")
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

// Activity polls the activity log for the trailing 24 hours, optionally
// filtered by event type. Each event's diff is folded into before/after
// maps. An empty window yields an empty list, never an error.
func (c *Client) Activity(ctx context.Context, filter *EventType) (out []Event, err error) {
	defer func() { recordOp("activity", err) }()
	start := timewindow.Naive(timewindow.EventPollStart(c.now()))
	events, err := api.ListEventLogs(ctx, c.http, c.baseURL, c.sess, start)
	if err != nil {
		return nil, err
	}
	result := make([]Event, 0, len(events))
	for _, ev := range events {
		if filter != nil && ev.Type() != *filter {
			continue
		}
		result = append(result, ev.Normalize())
	}
	return result, nil
}

// BookingUpdates is the booking-updated trigger: activity filtered to
// update events.
func (c *Client) BookingUpdates(ctx context.Context) ([]Event, error) {
	t := EventUpdate
	return c.Activity(ctx, &t)
}

// BookingCancellations is the booking-cancelled trigger: activity filtered
// to cancel events.
func (c *Client) BookingCancellations(ctx context.Context) ([]Event, error) {
	t := EventCancel
	return c.Activity(ctx, &t)
}
