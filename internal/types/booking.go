package types

import (
	"encoding/json"
	"fmt"
)

// Booking is a venue booking. Outside of id and payment status the upstream
// schema is treated as opaque pass-through: records are fetched in full,
// mutated minimally, and replaced in full, so unknown fields must survive a
// round trip. A map keeps them intact.
type Booking map[string]any

// forbiddenBookingFields must never be sent back in a replacement body; the
// upstream rejects or mishandles them.
var forbiddenBookingFields = []string{"id", "syncToExternalCalendar", "piClientSecret"}

// ID returns the booking identifier as a string. The upstream encodes it as
// a JSON number; callers supply it as a string.
func (b Booking) ID() string {
	return stringifyID(b["id"])
}

// ReplacementBody returns a copy of the booking with the forbidden fields
// stripped and the payment status overlaid, ready for full-record PUT.
func (b Booking) ReplacementBody(status PaymentStatus) Booking {
	out := make(Booking, len(b))
	for k, v := range b {
		out[k] = v
	}
	for _, k := range forbiddenBookingFields {
		delete(out, k)
	}
	out["paymentStatus"] = int(status)
	return out
}

// ExistingUserID reports the identifier of an already-registered account, if
// the ping found one.
func (p ProfilePing) ExistingUserID() (string, bool) {
	if p.VenueuserID == nil {
		return "", false
	}
	s := stringifyID(p.VenueuserID)
	if s == "" || s == "0" {
		return "", false
	}
	return s, true
}

// stringifyID renders a loosely-typed JSON identifier (string or number) as
// a string. Numbers decoded as float64 are printed without an exponent.
func stringifyID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}
