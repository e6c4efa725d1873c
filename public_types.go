package skedda

import (
	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

// Public type aliases so SDK consumers can import only the skedda package.

// Session is the credential-derived state required to authorize calls. It is
// immutable once produced; re-authentication replaces it wholesale. Hosts
// persist it between invocations and hand it back via WithSession.
type Session = session.Context

type (
	// Domain entities
	VenueUser     = types.VenueUser
	VenueSettings = types.VenueSettings
	Booking       = types.Booking
	Event         = types.Event
	ProfilePing   = types.ProfilePing

	// Inputs
	StringList = types.StringList

	// Results
	WebsResponse        = types.WebsResponse
	UserResult          = types.UserResult
	PasswordResetResult = types.PasswordResetResult
)

// PaymentStatus enumerates the booking payment states.
type PaymentStatus = types.PaymentStatus

const (
	PaymentNoStatus = types.PaymentNoStatus
	PaymentUnpaid   = types.PaymentUnpaid
	PaymentPaid     = types.PaymentPaid
)

// EventType enumerates the activity-log event classes.
type EventType = types.EventType

const (
	EventNew    = types.EventNew
	EventUpdate = types.EventUpdate
	EventCancel = types.EventCancel
)
