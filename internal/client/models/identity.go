// Package models defines the client-side data shapes exchanged with the
// triage backend and held in application state.
package models

// Identity is the authenticated user's profile as returned at login. It is a
// snapshot: it only changes by logging in again.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// User is a row of the admin-only user listing.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}
