// Package services contains the application services of the triage client:
// session management, the category catalog, single-message classification
// with feedback, batch upload and admin actions.
//
// Services share one *state.AppState and talk to the backend through
// client.Client. Local precondition failures (see ErrValidation) are reported
// before any network call is made.
//
// No call is cancelled when the user navigates away. A stale call still
// completes and may still update shared state, for example the category
// cache or the current scored email.
package services
