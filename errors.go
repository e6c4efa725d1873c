package skedda

import "github.com/venuesync/skedda-go/internal/apperrors"

// Error is the kind-tagged error type produced by every SDK operation.
// RemoteWrite errors additionally carry the upstream status code and raw
// body verbatim.
type Error = apperrors.Error

// Error kinds, re-exported so callers compare against a single symbol set.
const (
	KindValidation     = apperrors.KindValidation
	KindAuthentication = apperrors.KindAuthentication
	KindNotFound       = apperrors.KindNotFound
	KindUserNotFound   = apperrors.KindUserNotFound
	KindConflict       = apperrors.KindConflict
	KindRemoteWrite    = apperrors.KindRemoteWrite
)

// IsValidation reports whether err is a caller-input validation failure.
func IsValidation(err error) bool { return apperrors.IsKind(err, apperrors.KindValidation) }

// IsAuthentication reports whether err is a credential-exchange failure.
func IsAuthentication(err error) bool { return apperrors.IsKind(err, apperrors.KindAuthentication) }

// IsNotFound reports whether err is a record-resolution failure.
func IsNotFound(err error) bool {
	return apperrors.IsKind(err, apperrors.KindNotFound) || apperrors.IsKind(err, apperrors.KindUserNotFound)
}

// IsConflict reports whether err is a duplicate detected on create.
func IsConflict(err error) bool { return apperrors.IsKind(err, apperrors.KindConflict) }

// IsRemoteWrite reports whether err is a non-success status from a write
// endpoint.
func IsRemoteWrite(err error) bool { return apperrors.IsKind(err, apperrors.KindRemoteWrite) }
