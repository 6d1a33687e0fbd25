// Package common contains constants and small helpers shared by the Luca
// client and the local stub backend.
package common

const (
	// AuthTokenKey is the single secret-store entry holding the session token.
	AuthTokenKey = "authToken"

	// AuthorizationHeader carries the bearer token on protected calls.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "
)
