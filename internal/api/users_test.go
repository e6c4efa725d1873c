package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/session"
	"github.com/venuesync/skedda-go/internal/types"
)

func TestSearchUsers_QueryAndSessionHeaders(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/venueuserslists" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("s") != "a@example.com" || q.Get("toExclusive") != "50" || q.Get("sortProperty") != "1" {
			t.Fatalf("unexpected query: %v", q)
		}
		if r.Header.Get("Cookie") != "sid=test" {
			t.Fatalf("session header missing: %v", r.Header)
		}
		_ = json.NewEncoder(w).Encode(types.UserListResponse{Venueusers: []types.VenueUser{{ID: "u1", Username: "a@example.com"}}})
	}))
	defer srv.Close()

	sess := &session.Context{Domain: "d", Headers: testSessionHeaders()}
	users, err := SearchUsers(context.Background(), srv.Client(), srv.URL, sess, "a@example.com")
	if err != nil {
		t.Fatalf("SearchUsers error: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u1" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestFindUserByEmail_ExactMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.UserListResponse{Venueusers: []types.VenueUser{
			{ID: "u1", Username: "other@example.com"},
			{ID: "u2", Username: "test@example.com"},
		}})
	}))
	defer srv.Close()

	for _, email := range []string{"test@example.com", "Test@Example.com", "TEST@EXAMPLE.COM"} {
		got, err := FindUserByEmail(context.Background(), srv.Client(), srv.URL, nil, email)
		if err != nil {
			t.Fatalf("FindUserByEmail(%q) error: %v", email, err)
		}
		if got == nil || got.ID != "u2" {
			t.Fatalf("FindUserByEmail(%q): unexpected match %+v", email, got)
		}
		if got.Username != "test@example.com" {
			t.Fatalf("stored casing must be preserved, got %q", got.Username)
		}
	}
}

func TestFindUserByEmail_SubstringCandidatesAreNotMatches(t *testing.T) {
	t.Parallel()
	// The upstream substring search returns candidates; none is an exact
	// match, so resolution must report no match.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.UserListResponse{Venueusers: []types.VenueUser{
			{ID: "u1", Username: "test@example.com.au"},
			{ID: "u2", Username: "pretest@example.com"},
		}})
	}))
	defer srv.Close()

	got, err := FindUserByEmail(context.Background(), srv.Client(), srv.URL, nil, "test@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no exact match, got %+v", got)
	}
}

func TestFindUserByEmail_FirstExactMatchWins(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.UserListResponse{Venueusers: []types.VenueUser{
			{ID: "u1", Username: "Dup@example.com"},
			{ID: "u2", Username: "dup@example.com"},
		}})
	}))
	defer srv.Close()

	got, err := FindUserByEmail(context.Background(), srv.Client(), srv.URL, nil, "dup@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail error: %v", err)
	}
	if got == nil || got.ID != "u1" {
		t.Fatalf("expected first match u1, got %+v", got)
	}
}

func TestGetUser_EnvelopeAndBareBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/u-env") {
			_, _ = w.Write([]byte(`{"venueuser": {"id":"u-env","username":"e@example.com"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"u-bare","username":"b@example.com"}`))
	}))
	defer srv.Close()

	got, err := GetUser(context.Background(), srv.Client(), srv.URL, nil, "u-env")
	if err != nil || got.ID != "u-env" {
		t.Fatalf("envelope fetch: %+v, %v", got, err)
	}
	got, err = GetUser(context.Background(), srv.Client(), srv.URL, nil, "u-bare")
	if err != nil || got.ID != "u-bare" {
		t.Fatalf("bare fetch: %+v, %v", got, err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := GetUser(context.Background(), srv.Client(), srv.URL, nil, "u-1")
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpdateUser_EnvelopeKeyAndSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}
		var env map[string]json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&env)
		if _, ok := env["venueuser"]; !ok {
			t.Fatalf("body must wrap the record under venueuser: %v", env)
		}
		_, _ = w.Write([]byte(`{"venueUserPutViewModel": {"id":"u-1","username":"a@example.com"}}`))
	}))
	defer srv.Close()

	got, err := UpdateUser(context.Background(), srv.Client(), srv.URL, nil, "u-1", types.VenueUser{Username: "a@example.com"})
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdateUser_RemoteWriteCarriesStatusAndBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := UpdateUser(context.Background(), srv.Client(), srv.URL, nil, "u-1", types.VenueUser{})
	if !apperrors.IsKind(err, apperrors.KindRemoteWrite) {
		t.Fatalf("expected RemoteWrite, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "upstream exploded") {
		t.Fatalf("error must carry status and raw body: %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/venueusers" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var env types.VenueUserEnvelope
		_ = json.NewDecoder(r.Body).Decode(&env)
		env.Venueuser.ID = "u-new"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.VenueUserEnvelope{Venueuser: env.Venueuser})
	}))
	defer srv.Close()

	got, err := CreateUser(context.Background(), srv.Client(), srv.URL, nil, types.VenueUser{Username: "n@example.com"})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if got.ID != "u-new" || got.Username != "n@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestProfilePing_Shapes(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("email") == "" || q.Get("includevenueuserid") != "true" {
			t.Fatalf("unexpected query: %v", q)
		}
		_, _ = w.Write([]byte(`{"userprofileping": {"venueuserId": 88, "isValidEmail": true}}`))
	}))
	defer srv.Close()

	ping, err := ProfilePing(context.Background(), srv.Client(), srv.URL, nil, "a@example.com")
	if err != nil {
		t.Fatalf("ProfilePing error: %v", err)
	}
	id, exists := ping.ExistingUserID()
	if !exists || id != "88" {
		t.Fatalf("unexpected ping: %+v", ping)
	}
}

func TestProfilePing_MalformedResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := ProfilePing(context.Background(), srv.Client(), srv.URL, nil, "a@example.com"); err == nil {
		t.Fatal("expected error for missing userprofileping envelope")
	}
}

func TestUsers_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := SearchUsers(context.Background(), hc, "http://example.com", nil, "a@b.c"); err == nil {
		t.Fatal("expected Do error for SearchUsers")
	}
	if _, err := GetUser(context.Background(), hc, "http://example.com", nil, "u"); err == nil {
		t.Fatal("expected Do error for GetUser")
	}
	if _, err := UpdateUser(context.Background(), hc, "http://example.com", nil, "u", types.VenueUser{}); err == nil {
		t.Fatal("expected Do error for UpdateUser")
	}
}
