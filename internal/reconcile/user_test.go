package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/types"
)

func strptr(s string) *string { return &s }

func existingUser() types.VenueUser {
	return types.VenueUser{
		ID:                    "u-77",
		Username:              "test@example.com",
		FirstName:             "Ada",
		LastName:              "Lovelace",
		Organisation:          strptr("Analytical Engines Ltd"),
		ContactNumber:         strptr("+1 555 0100"),
		Language:              strptr("en"),
		TwoLetterCountryCode:  strptr("GB"),
		Notes:                 strptr("vip"),
		Tags:                  []string{"t1", "t2"},
		TermsAgreed:           true,
		ContactNumberRequired: true,
		CreatedDate:           strptr("2024-01-02T10:00:00"),
	}
}

func TestUser_PreservesEverythingByDefault(t *testing.T) {
	t.Parallel()
	existing := existingUser()

	got, err := User(existing, UserPatch{})
	require.NoError(t, err)

	assert.Equal(t, existing.Username, got.Username)
	assert.Equal(t, existing.FirstName, got.FirstName)
	assert.Equal(t, existing.LastName, got.LastName)
	assert.Equal(t, existing.Organisation, got.Organisation)
	assert.Equal(t, existing.Notes, got.Notes)
	assert.Equal(t, existing.Tags, got.Tags)
	assert.Equal(t, existing.CreatedDate, got.CreatedDate)
	assert.True(t, got.TermsAgreed)
}

func TestUser_ClearsServerAssignedID(t *testing.T) {
	t.Parallel()
	got, err := User(existingUser(), UserPatch{})
	require.NoError(t, err)
	assert.Empty(t, got.ID, "replacement body must not carry the id")
}

func TestUser_ScalarOverrides(t *testing.T) {
	t.Parallel()
	got, err := User(existingUser(), UserPatch{
		FirstName:     strptr("Grace"),
		Organisation:  strptr("Navy"),
		ContactNumber: strptr("+1 555 0199"),
		Language:      strptr("fr"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, "Navy", *got.Organisation)
	assert.Equal(t, "+1 555 0199", *got.ContactNumber)
	assert.Equal(t, "fr", *got.Language)
}

func TestUser_CountryCodeUppercased(t *testing.T) {
	t.Parallel()
	got, err := User(existingUser(), UserPatch{TwoLetterCountryCode: strptr("ca")})
	require.NoError(t, err)
	assert.Equal(t, "CA", *got.TwoLetterCountryCode)
}

func TestUser_CountryCodeWrongLengthFails(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"", "C", "CAN"} {
		_, err := User(existingUser(), UserPatch{TwoLetterCountryCode: strptr(code)})
		require.Error(t, err, "code %q", code)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "code %q", code)
	}
}

func TestUser_NotesExplicitEmptyOverrides(t *testing.T) {
	t.Parallel()
	got, err := User(existingUser(), UserPatch{Notes: strptr("")})
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Empty(t, *got.Notes)
}

func TestUser_NotesAbsentPreserved(t *testing.T) {
	t.Parallel()
	got, err := User(existingUser(), UserPatch{})
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "vip", *got.Notes)
}

func TestUser_TagActionWithoutIDsFails(t *testing.T) {
	t.Parallel()
	_, err := User(existingUser(), UserPatch{TagAction: TagAdd})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestUser_TagAlgebraApplied(t *testing.T) {
	t.Parallel()
	got, err := User(existingUser(), UserPatch{TagAction: TagRemove, TagIDs: []string{"t1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, got.Tags)
}

func TestUser_DoesNotMutateExistingTags(t *testing.T) {
	t.Parallel()
	existing := existingUser()
	_, err := User(existing, UserPatch{TagAction: TagAdd, TagIDs: []string{"t3"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, existing.Tags)
}

func TestNewUser_RequiresEmail(t *testing.T) {
	t.Parallel()
	_, err := NewUser(NewUserInput{FirstName: "A", LastName: "B"}, types.VenueSettings{})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "email is required")
}

func TestNewUser_RequiresBothNames(t *testing.T) {
	t.Parallel()
	for _, in := range []NewUserInput{
		{Email: "a@b.com", FirstName: "A"},
		{Email: "a@b.com", LastName: "B"},
	} {
		_, err := NewUser(in, types.VenueSettings{})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	}
}

func TestNewUser_VenueDefaultsNeverCallerSourced(t *testing.T) {
	t.Parallel()
	venue := types.VenueSettings{
		TwoLetterCountryCode:      "CA",
		UserContactNumberRequired: true,
		SampleContactNumber:       "(416) 555-0123",
	}

	got, err := NewUser(NewUserInput{Email: "new@example.com", FirstName: "New", LastName: "User"}, venue)
	require.NoError(t, err)

	assert.Equal(t, "CA", *got.TwoLetterCountryCode)
	assert.True(t, got.ContactNumberRequired)
	assert.Equal(t, "(416) 555-0123", *got.SampleContactNumber)
	assert.True(t, got.TermsAgreed, "terms-agreed is forced on for creation")
	assert.Equal(t, "new@example.com", got.Username)
}

func TestNewUser_FallbackDefaultsWhenVenueSilent(t *testing.T) {
	t.Parallel()
	got, err := NewUser(NewUserInput{Email: "new@example.com", FirstName: "New", LastName: "User"}, types.VenueSettings{})
	require.NoError(t, err)

	assert.Equal(t, "US", *got.TwoLetterCountryCode)
	assert.False(t, got.ContactNumberRequired)
	assert.Equal(t, "(506) 234-5678", *got.SampleContactNumber)
}

func TestNewUser_TagsDefaultToEmptySet(t *testing.T) {
	t.Parallel()
	got, err := NewUser(NewUserInput{Email: "new@example.com", FirstName: "New", LastName: "User"}, types.VenueSettings{})
	require.NoError(t, err)
	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}
