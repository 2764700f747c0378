// Package auth provides session-based authentication for the JSON API.
//
// The catalog itself is identity-agnostic; auth exists so the review endpoint
// can capture the submitter's display name at submission time. Accounts live
// in the application database, passwords are bcrypt-hashed, and sessions are
// stored in SQLite via scs. Set AUTH_MODE=none to run without accounts.
package auth
