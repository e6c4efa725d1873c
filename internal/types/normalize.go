package types

import "encoding/json"

// userEnvelopeKeys is the envelope fallback order for user write responses.
// Older server deployments nest the record under different keys; the order
// encodes deployed-version compatibility and must not be reordered.
var userEnvelopeKeys = []string{"venueUserPutViewModel", "venueuser", "user"}

// ExtractUser resolves the heterogeneous envelopes of the user write
// endpoints: the record may sit under any of the known keys, or the body may
// be the record itself.
func ExtractUser(body []byte) (VenueUser, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return VenueUser{}, err
	}
	for _, key := range userEnvelopeKeys {
		raw, ok := probe[key]
		if !ok || string(raw) == "null" {
			continue
		}
		var u VenueUser
		if err := json.Unmarshal(raw, &u); err != nil {
			return VenueUser{}, err
		}
		return u, nil
	}
	var u VenueUser
	if err := json.Unmarshal(body, &u); err != nil {
		return VenueUser{}, err
	}
	return u, nil
}

// Result shapes a full venue user into the stable host-facing record.
// fallbackID fills in the identifier when the upstream response omits it.
func (u VenueUser) Result(fallbackID string) *UserResult {
	id := u.ID
	if id == "" {
		id = fallbackID
	}
	tags := u.Tags
	if tags == nil {
		tags = []string{}
	}
	return &UserResult{
		ID:                   id,
		Email:                u.Username,
		FirstName:            u.FirstName,
		LastName:             u.LastName,
		ContactNumber:        u.ContactNumber,
		Organisation:         u.Organisation,
		Language:             u.Language,
		TwoLetterCountryCode: u.TwoLetterCountryCode,
		Tags:                 tags,
		Notes:                u.Notes,
		CreatedDate:          u.CreatedDate,
		Success:              true,
	}
}
