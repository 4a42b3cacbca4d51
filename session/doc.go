// Package session is the single source of truth for "who is logged in". It owns
// the in-memory [Session] and keeps it synchronized with a persisted [Credential]
// (token + role) that survives restarts, the way the browser front-end kept a
// token and role in localStorage.
//
// # Persistence backends
//
// The [Credentials] interface abstracts where the credential pair lives.
// [FileCredentials] (a 0600 JSON file under the user's home directory) is the
// default; [RedisCredentials] serves shared or lab machines where a local file
// is not durable.
//
// # Trust boundary
//
// Persisted storage is authoritative. Restore reconciles the in-memory session
// against it: a missing credential clears any stale session, and the persisted
// role always wins over a role claim embedded in the token, which a client
// could have swapped.
//
// # What this package must NOT do
//
//   - Issue HTTP requests or interpret server responses.
//   - Import the root package (no upward imports).
package session
