// Package pmclient is the Go client for the college project-management backend:
// a session store with persisted credentials, a single gateway through which
// every REST call leaves the process, and typed methods for each backend route
// group (auth, projects, tasks, teams, presentations, announcements,
// notifications, chat, files, allocations, ideas, reports).
//
// Clients are assembled through [Builder] and treated as immutable afterwards;
// all methods are safe for concurrent use.
//
// # Architecture boundaries
//
// pmclient is the public surface. Session lifecycle lives in the session
// sub-package, unverified token inspection in jwt, and URL hygiene in
// internal/urlutil. Nothing here implements the backend; the server stays the
// sole authority on authorization and data.
//
// # Auth policy, in one place
//
// The gateway attaches "Authorization: Bearer <token>" to every request,
// reading the token fresh from persisted storage each time; a 401 clears the
// credential and flips the session store to unauthenticated; a 301/302/307
// with a Location header is retried exactly once with the bearer reattached,
// because redirect-following transports drop custom headers. Call sites never
// repeat any of this.
package pmclient
