// Package common holds constants and sentinel errors shared by the Triply
// client and server. Callers match errors with errors.Is.
package common

import "errors"

// AccessTokenHeaderName is the gRPC metadata key carrying the access token.
const AccessTokenHeaderName = "access_token"

var (
	// repository errors
	ErrorNotFound = errors.New("not found")

	// service errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	ErrorLoginAlreadyExists = errors.New("login already exists")

	ErrInvalidToken = errors.New("invalid token")

	// token lifecycle
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
