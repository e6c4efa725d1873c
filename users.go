package skedda

import (
	"context"
	"fmt"

	"github.com/venuesync/skedda-go/internal/api"
	"github.com/venuesync/skedda-go/internal/apperrors"
	"github.com/venuesync/skedda-go/internal/reconcile"
	"github.com/venuesync/skedda-go/internal/types"
)

// FindUserByEmail looks a user up by exact case-insensitive email match.
// The upstream search is substring-capable and not authoritative, so
// exactness is enforced locally. Returns an empty list when there is no
// exact match: for searches, "no match" is a result, not an error.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (out []VenueUser, err error) {
	defer func() { recordOp("find_user", err) }()
	if email == "" {
		return nil, apperrors.Validationf("email is required")
	}
	user, err := api.FindUserByEmail(ctx, c.http, c.baseURL, c.sess, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []VenueUser{}, nil
	}
	return []VenueUser{*user}, nil
}

// GetUser retrieves a user by its server-assigned identifier.
func (c *Client) GetUser(ctx context.Context, userID string) (out *VenueUser, err error) {
	defer func() { recordOp("get_user", err) }()
	if userID == "" {
		return nil, apperrors.Validationf("user id is required")
	}
	return api.GetUser(ctx, c.http, c.baseURL, c.sess, userID)
}

// UpdateUserInput is the sparse update description for an existing user.
// Exactly one of UserID or Email selects the target. Nil optional fields
// preserve the current value; non-nil values override, including explicit
// empty strings.
type UpdateUserInput struct {
	UserID string
	Email  string

	FirstName            *string
	LastName             *string
	ContactNumber        *string
	Organisation         *string
	Language             *string
	TwoLetterCountryCode *string
	Notes                *string

	// TagAction is one of "add", "remove", "set"; TagIDs names the tags it
	// operates on. A bare scalar input coerces to a one-element list.
	TagAction string
	TagIDs    StringList
}

// UpdateUser performs the fetch-merge-update cycle: resolve the current full
// record (by id, or by exact email match), reconcile the patch against it,
// and transmit a complete replacement. The upstream exposes no version token
// for users, so the read-modify-write is unguarded against concurrent
// writers.
func (c *Client) UpdateUser(ctx context.Context, in UpdateUserInput) (out *UserResult, err error) {
	defer func() { recordOp("update_user", err) }()
	if in.UserID == "" && in.Email == "" {
		return nil, apperrors.Validationf("either user id or email is required")
	}

	targetID := in.UserID
	var existing *types.VenueUser
	if targetID == "" {
		existing, err = api.FindUserByEmail(ctx, c.http, c.baseURL, c.sess, in.Email)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperrors.UserNotFound(in.Email)
		}
		targetID = existing.ID
	} else {
		existing, err = api.GetUser(ctx, c.http, c.baseURL, c.sess, targetID)
		if err != nil {
			return nil, err
		}
	}

	replacement, err := reconcile.User(*existing, reconcile.UserPatch{
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		ContactNumber:        in.ContactNumber,
		Organisation:         in.Organisation,
		Language:             in.Language,
		TwoLetterCountryCode: in.TwoLetterCountryCode,
		Notes:                in.Notes,
		TagAction:            reconcile.TagAction(in.TagAction),
		TagIDs:               in.TagIDs,
	})
	if err != nil {
		return nil, err
	}

	updated, err := api.UpdateUser(ctx, c.http, c.baseURL, c.sess, targetID, replacement)
	if err != nil {
		return nil, err
	}
	return updated.Result(targetID), nil
}

// CreateUserInput describes a user to create. Country code, contact-number
// policy, and the sample number format come from the venue settings, never
// from the caller.
type CreateUserInput struct {
	Email         string
	FirstName     string
	LastName      string
	ContactNumber *string
	Notes         *string
	TagIDs        StringList
}

// CreateUser validates input, runs the pre-flight profile ping (conflict on
// an existing account, validation failure on an undeliverable email),
// applies venue defaults, and posts the new record with terms-agreed forced
// on.
func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (out *UserResult, err error) {
	defer func() { recordOp("create_user", err) }()
	if in.Email == "" {
		return nil, apperrors.Validationf("email is required")
	}
	if in.FirstName == "" || in.LastName == "" {
		return nil, apperrors.Validationf("first name and last name are required")
	}

	ping, err := api.ProfilePing(ctx, c.http, c.baseURL, c.sess, in.Email)
	if err != nil {
		return nil, err
	}
	if id, exists := ping.ExistingUserID(); exists {
		return nil, apperrors.Conflictf("user with email %s already exists (id: %s)", in.Email, id)
	}
	if !ping.IsValidEmail {
		return nil, apperrors.Validationf("email %s is not valid", in.Email)
	}

	wr, err := api.Webs(ctx, c.http, c.baseURL, c.sess)
	if err != nil {
		return nil, err
	}
	if wr.Venue == nil {
		return nil, fmt.Errorf("venue settings unavailable")
	}

	record, err := reconcile.NewUser(reconcile.NewUserInput{
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ContactNumber: in.ContactNumber,
		Notes:         in.Notes,
		TagIDs:        in.TagIDs,
	}, *wr.Venue)
	if err != nil {
		return nil, err
	}

	created, err := api.CreateUser(ctx, c.http, c.baseURL, c.sess, record)
	if err != nil {
		return nil, err
	}
	return created.Result(""), nil
}

// SendPasswordReset asks the app host to email a reset link pointing back at
// the venue's booking page.
func (c *Client) SendPasswordReset(ctx context.Context, email string) (out *PasswordResetResult, err error) {
	defer func() { recordOp("password_reset", err) }()
	if email == "" {
		return nil, apperrors.Validationf("email is required")
	}
	returnURL := fmt.Sprintf("https://%s/booking", c.domain)
	if err := api.SendPasswordReset(ctx, c.http, c.resetBaseURL, c.sess, email, returnURL); err != nil {
		return nil, err
	}
	return &PasswordResetResult{
		Success:   true,
		Email:     email,
		Message:   "password reset email sent successfully",
		ReturnURL: returnURL,
	}, nil
}
