package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Nikhilraj155/project-managment/jwt"
)

// ErrMalformedToken is returned by Restore when the persisted token does not
// decode (wrong segment count, payload not JSON, or no subject identifier).
// The credential is discarded as a side effect.
var ErrMalformedToken = errors.New("persisted token is malformed")

// ErrRoleMissing is returned by Restore when the token decodes but no usable
// role is persisted alongside it. Same discard policy as ErrMalformedToken.
var ErrRoleMissing = errors.New("persisted role is missing")

// State is the session store lifecycle state.
type State uint8

const (
	// StateUnauthenticated means no session is held.
	StateUnauthenticated State = iota
	// StateRestoring means a persisted token exists and is being decoded.
	StateRestoring
	// StateAuthenticated means a session is held in memory.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Store holds the in-memory session and keeps it synchronized with a
// Credentials backend. All methods are safe for concurrent use.
type Store struct {
	creds  Credentials
	logger zerolog.Logger

	mu      sync.Mutex
	state   State
	session *Session
}

// NewStore returns a session store over the given credential backend.
func NewStore(creds Credentials, logger zerolog.Logger) *Store {
	return &Store{
		creds:  creds,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// Restore reconciles the in-memory session with persisted storage.
//
// With no persisted credential, any in-memory session is cleared (persisted
// storage is authoritative) and ErrNoCredential is returned; callers route to
// login. With a credential and an existing session, the session is kept as is.
// With a credential and no session, the token payload is decoded and the
// session is populated from the decoded subject plus the persisted role. A
// malformed token or missing role discards the credential, logs a warning, and
// returns ErrMalformedToken or ErrRoleMissing. Restore never leaves the store
// in StateRestoring and calling it twice yields the same result.
func (s *Store) Restore(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, err := s.creds.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			if s.session != nil {
				s.logger.Warn().Msg("persisted credential gone, clearing stale in-memory session")
			}
			s.session = nil
			s.state = StateUnauthenticated
			return nil, ErrNoCredential
		}
		return nil, err
	}

	if s.session != nil {
		s.state = StateAuthenticated
		copied := *s.session
		return &copied, nil
	}

	s.state = StateRestoring

	claims, err := jwt.Decode(cred.Token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding malformed persisted token")
		s.discardLocked(ctx)
		return nil, ErrMalformedToken
	}

	role, ok := ParseRole(cred.Role)
	if !ok {
		s.logger.Warn().Str("role", cred.Role).Msg("discarding credential with missing or unknown role")
		s.discardLocked(ctx)
		return nil, ErrRoleMissing
	}

	s.session = &Session{
		UserID:   claims.UserID,
		Username: usernameFor(claims),
		Email:    claims.Email(),
		Role:     role,
		Token:    cred.Token,
	}
	s.state = StateAuthenticated

	copied := *s.session
	return &copied, nil
}

// SetCredentials replaces the in-memory session and persists its token and
// role. This is the login path.
func (s *Store) SetCredentials(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return errors.New("session token is empty")
	}
	if !sess.Role.Valid() {
		return errors.New("session role is invalid")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.Store(ctx, Credential{Token: sess.Token, Role: string(sess.Role)}); err != nil {
		return err
	}
	s.session = &sess
	s.state = StateAuthenticated
	return nil
}

// Logout clears the in-memory session and removes the persisted credential.
// Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.state = StateUnauthenticated
	return s.creds.Clear(ctx)
}

// Invalidate is the external 401 signal: the server no longer honors the
// token, so both the session and the credential are dropped.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil || s.state != StateUnauthenticated {
		s.logger.Warn().Msg("session invalidated by server, credentials cleared")
	}
	s.session = nil
	s.state = StateUnauthenticated
	s.discardLocked(ctx)
}

// Current returns a copy of the in-memory session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// State reports the lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token reads the bearer token fresh from persisted storage rather than from
// the in-memory session, so callers always see the current value even when
// another process rotated or cleared it.
func (s *Store) Token(ctx context.Context) (string, error) {
	cred, err := s.creds.Load(ctx)
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}

// discardLocked drops the persisted credential, ignoring backend errors beyond
// a log line. Callers hold s.mu.
func (s *Store) discardLocked(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear persisted credential")
	}
	s.session = nil
	s.state = StateUnauthenticated
}

func usernameFor(claims *jwt.Claims) string {
	if claims.Username != "" {
		return claims.Username
	}
	if at := strings.IndexByte(claims.Email(), '@'); at > 0 {
		return claims.Email()[:at]
	}
	return "User"
}
