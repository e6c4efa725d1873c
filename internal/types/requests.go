package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest is the credential-exchange body. The timestamp is an
// ISO-8601 instant tagged with the fixed EDT offset, a protocol requirement
// of the identity service.
type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Domain    string `json:"domain"`
	Timezone  string `json:"timezone"`
	Timestamp string `json:"timestamp"`
}

// VenueUserEnvelope wraps a user payload under the envelope key the user
// endpoints expect verbatim.
type VenueUserEnvelope struct {
	Venueuser VenueUser `json:"venueuser"`
}

// BookingEnvelope wraps a booking payload for PUT /bookings/{id}.
type BookingEnvelope struct {
	Booking Booking `json:"booking"`
}

// LoginResetRequest is the password-reset body posted to the fixed app host.
type LoginResetRequest struct {
	Username        string `json:"username"`
	ReturnURL       string `json:"returnUrl"`
	Product         any    `json:"product"`
	ArbitraryErrors any    `json:"arbitraryerrors"`
}

// LoginResetEnvelope wraps the reset request under its envelope key.
type LoginResetEnvelope struct {
	LoginResetRequest LoginResetRequest `json:"loginresetrequest"`
}
