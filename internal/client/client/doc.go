// Package client is the request layer between the triage client and its
// backend.
//
// # Overview
//
// The backend speaks two transport styles:
//  1. A single query/mutation endpoint taking {query, variables} and answering
//     {data, errors?}.
//  2. Path-addressed task endpoints (/stats, /upload_emails, /retrain) taking
//     and returning plain JSON, reporting failures as a non-2xx status with an
//     "error" field.
//
// HTTPClient normalises both into one error model (see Error and Kind) and
// exposes the typed operations of the Client interface on top.
//
// # Credentials
//
// The bearer credential is pulled from a CredentialSource on every call and
// never cached here, so logging in or out takes effect on the next request.
// Calls made while logged out carry no Authorization header.
//
// # Error Handling
//
// Every failure is an *Error. Match the kind with errors.Is against
// ErrRemoteRejected, ErrUnreachable or ErrMalformedResponse. Nothing is
// retried.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Concurrent calls are independent and
// complete in no particular order.
package client
