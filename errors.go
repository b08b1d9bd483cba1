package accounts

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrEmailInUse is the distinguished registration outcome for an address
// that already belongs to an account.
var ErrEmailInUse = errors.New("the received email is already in use", errors.CategoryConflict).
	WithTextCode("EMAIL_IN_USE").
	WithCode(errors.CodeForbidden)

// ErrAccessDenied is returned when a request carries no usable bearer token
// or the token does not resolve to an account with the required role.
var ErrAccessDenied = errors.New("access denied", errors.CategoryAuthz).
	WithTextCode("ACCESS_DENIED").
	WithCode(errors.CodeForbidden)

// ErrMismatchedHashAndPassword is the internal marker for a failed
// credential comparison. It never reaches a response envelope.
var ErrMismatchedHashAndPassword = errors.New("crypto/bcrypt: hashedPassword is not the hash of the given password", errors.CategoryAuth).
	WithTextCode("PASSWORD_MISMATCH").
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString rejects empty plaintext input to the hasher.
var ErrNoEmptyString = errors.New("value should not be an empty string", errors.CategoryValidation).
	WithTextCode("EMPTY_STRING").
	WithCode(errors.CodeBadRequest)

// ErrTokenExpired is a sanitized version of the JWT library expiry error.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode("TOKEN_EXPIRED").
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is a sanitized version of the JWT library parse errors.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode("TOKEN_MALFORMED").
	WithCode(errors.CodeUnauthorized)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed")
}
