package pmclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nikhilraj155/project-managment/jwt"
	"github.com/Nikhilraj155/project-managment/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

// Login authenticates against /auth/login, decodes the returned token for the
// subject identity, and persists the credential pair through the session
// store. The role comes from the login response body, not the token payload,
// and is what later restores trust.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	var resp loginResponse
	if err := c.postJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	claims, err := jwt.Decode(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("login response token: %w", err)
	}

	role, ok := session.ParseRole(resp.Role)
	if !ok {
		return nil, fmt.Errorf("login response carries unknown role %q", resp.Role)
	}

	username := claims.Username
	if username == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			username = email[:at]
		}
	}

	sess := session.Session{
		UserID:   claims.UserID,
		Username: username,
		Email:    email,
		Role:     role,
		Token:    resp.AccessToken,
	}
	if err := c.sessions.SetCredentials(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist credentials: %w", err)
	}

	c.logger.Info().Str("role", string(role)).Msg("logged in")
	return &sess, nil
}

// Register creates an account via /auth/register. It does not log the new
// account in; callers follow up with Login.
func (c *Client) Register(ctx context.Context, input RegisterInput) (User, error) {
	var user User
	if err := c.postJSON(ctx, "/auth/register", input, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout clears the in-memory session and removes the persisted credential.
func (c *Client) Logout(ctx context.Context) error {
	return c.sessions.Logout(ctx)
}
