// Package jwt inspects bearer tokens on the client side without verifying their
// signature. The backend is the only party holding the signing secret; this package
// exists so a restored token can be mined for the subject identity before the first
// round-trip.
//
// # What this package must NOT do
//
//   - Treat a decoded token as proof of anything. Authorization always happens
//     server-side; an expired or forged token simply earns a 401 on first use.
//   - Import the root package or session (no upward imports).
package jwt
