// Package common contains constants shared by the mailtriage client layers.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries the per-call correlation id.
const RequestIDHeaderName = "X-Request-ID"

// Persisted session keys in the local metadata store.
const (
	MetadataKeyToken    = "auth_token"
	MetadataKeyIdentity = "user_identity"
)

// BearerPrefix is prepended to the credential in the Authorization header.
const BearerPrefix = "Bearer "
