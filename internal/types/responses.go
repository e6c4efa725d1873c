package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse is the credential-exchange result. Headers is the session
// header set replayed on every authorized call.
type LoginResponse struct {
	Headers  map[string]string `json:"headers"`
	Timezone string            `json:"timezone"`
}

// WebsResponse mirrors GET /webs: venue settings plus the venue users the
// endpoint echoes back (the first user's username doubles as the connection
// label for hosts).
type WebsResponse struct {
	Venue      *VenueSettings `json:"venue"`
	Venueusers []VenueUser    `json:"venueusers"`
}

// UserListResponse mirrors the paginated user search.
type UserListResponse struct {
	Venueusers []VenueUser `json:"venueusers"`
}

// UserEnvelopeResponse mirrors GET /venueusers/{id}.
type UserEnvelopeResponse struct {
	Venueuser *VenueUser `json:"venueuser"`
}

// ProfilePingResponse mirrors GET /userprofilepings.
type ProfilePingResponse struct {
	Userprofileping *ProfilePing `json:"userprofileping"`
}

// BookingListResponse mirrors the windowed booking listing.
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

// EventLogListResponse mirrors GET /eventlogslists.
type EventLogListResponse struct {
	Eventlogs []Event `json:"eventlogs"`
}

// UserResult is the stable output shape returned to hosts for user
// creates and updates.
type UserResult struct {
	ID                   string   `json:"id"`
	Email                string   `json:"email"`
	FirstName            string   `json:"firstName"`
	LastName             string   `json:"lastName"`
	ContactNumber        *string  `json:"contactNumber"`
	Organisation         *string  `json:"organisation"`
	Language             *string  `json:"language"`
	TwoLetterCountryCode *string  `json:"twoLetterCountryCode"`
	Tags                 []string `json:"tags"`
	Notes                *string  `json:"notes"`
	CreatedDate          *string  `json:"createdDate"`
	Success              bool     `json:"success"`
}

// PasswordResetResult is the stable output shape for password resets.
type PasswordResetResult struct {
	Success   bool   `json:"success"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	ReturnURL string `json:"returnUrl"`
}
