package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// VenueUser is the complete wire representation of a venue user. The upstream
// has no PATCH support, so updates always transmit this full shape; every
// field must round-trip unchanged when not explicitly modified.
//
// ID is server-assigned and must never appear in a replacement body, so it is
// cleared before transmission and carried in the URL instead.
type VenueUser struct {
	ID string `json:"id,omitempty"`

	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Organisation          *string `json:"organisation"`
	ContactNumber         *string `json:"contactNumber"`
	ContactNumberE164     *string `json:"contactNumberE164"`
	ContactNumberDisplay  *string `json:"contactNumberDisplay"`
	SampleContactNumber   *string `json:"sampleContactNumber"`
	ContactNumberRequired bool    `json:"contactNumberRequired"`
	Language              *string `json:"language"`
	TwoLetterCountryCode  *string `json:"twoLetterCountryCode"`
	Notes                 *string `json:"notes"`

	// Tags is logically a set of opaque tag identifiers: no duplicates,
	// order not significant.
	Tags []string `json:"venueusertags"`

	// Account-lifecycle fields, round-tripped verbatim.
	RegisterToken            *string `json:"registerToken"`
	RegisterMetadata         *string `json:"registerMetadata"`
	RegisterPayloadID        *string `json:"registerPayloadId"`
	RegisterPayloadKey       *string `json:"registerPayloadKey"`
	ResetAccessToken         bool    `json:"resetAccessToken"`
	PaymentGatewayCustomerID *string `json:"paymentGatewayCustomerId"`
	CCVenueToken             *string `json:"ccVenueToken"`
	UpdateCreditCard         bool    `json:"updateCreditCard"`
	CreatedDate              *string `json:"createdDate"`
	AntiForgeryToken         *string `json:"antiForgeryToken"`
	Photo                    *string `json:"photo"`
	CreateStripeCustomer     bool    `json:"createStripeCustomer"`
	TermsAgreed              bool    `json:"termsAgreed"`
	RemoveExternalLogins     bool    `json:"removeExternalLogins"`

	// Always transmitted as null; the upstream uses it for error reporting.
	ArbitraryErrors any `json:"arbitraryerrors"`
}

// VenueSettings holds the venue-level defaults applied to new users. These
// come only from the venue, never from caller input.
type VenueSettings struct {
	TwoLetterCountryCode      string `json:"twoLetterCountryCode"`
	UserContactNumberRequired bool   `json:"userContactNumberRequired"`
	SampleContactNumber       string `json:"sampleContactNumber"`
}

// ProfilePing is the pre-create existence/validity check keyed by email.
type ProfilePing struct {
	// VenueuserID is the identifier of an existing account, if any. The
	// upstream may encode it as a number or a string, so it is held loosely
	// and stringified on demand.
	VenueuserID  any  `json:"venueuserId"`
	IsValidEmail bool `json:"isValidEmail"`
}

// PaymentStatus enumerates the booking payment states.
type PaymentStatus int

const (
	PaymentNoStatus PaymentStatus = 1
	PaymentUnpaid   PaymentStatus = 2
	PaymentPaid     PaymentStatus = 3
)

// EventType enumerates the activity-log event classes.
type EventType int

const (
	EventNew    EventType = 0
	EventUpdate EventType = 1
	EventCancel EventType = 2
)
