// Package reconcile computes full replacement records from a prior full
// record plus a sparse patch. The upstream has no PATCH support, so every
// update is a client-side read-modify-write over the complete user shape.
package reconcile

import (
	"strings"
	"unicode/utf8"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/types"
)

// UserPatch is the sparse update description for an existing user. Nil
// pointers preserve the existing value; non-nil pointers override, including
// explicit empty strings.
type UserPatch struct {
	FirstName            *string
	LastName             *string
	ContactNumber        *string
	Organisation         *string
	Language             *string
	TwoLetterCountryCode *string
	Notes                *string

	TagAction TagAction
	TagIDs    []string
}

// NewUserInput describes a user to create. Venue-level defaults (country
// code, contact-number policy, sample number) are applied separately and are
// never caller-overridable.
type NewUserInput struct {
	Email         string
	FirstName     string
	LastName      string
	ContactNumber *string
	Notes         *string
	TagIDs        []string
}

// User merges patch over existing and returns a complete record ready for
// full-replacement transmission. Every field of existing is preserved unless
// the patch names it. The returned record has its server-assigned ID cleared;
// the identifier travels in the URL, never the body.
func User(existing types.VenueUser, patch UserPatch) (types.VenueUser, error) {
	out := existing
	out.ID = ""
	out.ArbitraryErrors = nil
	out.Tags = append([]string(nil), existing.Tags...)

	if patch.FirstName != nil {
		out.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		out.LastName = *patch.LastName
	}
	if patch.ContactNumber != nil {
		out.ContactNumber = patch.ContactNumber
	}
	if patch.Organisation != nil {
		out.Organisation = patch.Organisation
	}
	if patch.Language != nil {
		out.Language = patch.Language
	}
	if patch.TwoLetterCountryCode != nil {
		code := *patch.TwoLetterCountryCode
		if utf8.RuneCountInString(code) != 2 {
			return types.VenueUser{}, apperrors.Validationf("country code must be exactly 2 letters (e.g., US, CA, GB)")
		}
		upper := strings.ToUpper(code)
		out.TwoLetterCountryCode = &upper
	}
	if patch.TagAction != "" {
		if len(patch.TagIDs) == 0 {
			return types.VenueUser{}, apperrors.Validationf("tag id(s) are required when tag action is specified")
		}
		out.Tags = ApplyTags(out.Tags, patch.TagAction, patch.TagIDs)
	}
	if patch.Notes != nil {
		out.Notes = patch.Notes
	}
	return out, nil
}

// NewUser builds the complete creation record from caller input and venue
// defaults. The terms-agreed flag is forced on: the upstream requires it for
// creation via this path.
func NewUser(in NewUserInput, venue types.VenueSettings) (types.VenueUser, error) {
	if in.Email == "" {
		return types.VenueUser{}, apperrors.Validationf("email is required")
	}
	if in.FirstName == "" || in.LastName == "" {
		return types.VenueUser{}, apperrors.Validationf("first name and last name are required")
	}

	countryCode := venue.TwoLetterCountryCode
	if countryCode == "" {
		countryCode = "US"
	}
	sampleNumber := venue.SampleContactNumber
	if sampleNumber == "" {
		sampleNumber = "(506) 234-5678"
	}

	tags := in.TagIDs
	if tags == nil {
		tags = []string{}
	}

	return types.VenueUser{
		Username:              in.Email,
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		ContactNumber:         in.ContactNumber,
		Notes:                 in.Notes,
		Tags:                  tags,
		TermsAgreed:           true,
		TwoLetterCountryCode:  &countryCode,
		SampleContactNumber:   &sampleNumber,
		ContactNumberRequired: venue.UserContactNumberRequired,
	}, nil
}
