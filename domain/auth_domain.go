package domain

import (
	"errors"
)

const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

var (
	MessagePermissionNotFound = "permission not found"

	ErrMissingAuthHeader       = errors.New("authorization header is expected")
	ErrInvalidAuthHeader       = errors.New("authorization header must be bearer token")
	ErrTokenInvalid            = errors.New("unable to verify authentication token")
	ErrTokenExpired            = errors.New("authentication token is expired")
	ErrInvalidIssuer           = errors.New("token issuer does not match")
	ErrInvalidAudience         = errors.New("token audience does not match")
	ErrMissingPermissionsClaim = errors.New("permissions not included in token")
	ErrPermissionNotFound      = errors.New("permission not found")
	ErrSigningKeyNotFound      = errors.New("no matching signing key for token")
)
