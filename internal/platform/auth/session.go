// Package auth issues and verifies session tokens for the reporting API.
//
// A successful login produces a signed JWT and records the account as the
// active session. Tokens are only honored while that recorded session
// matches, so logging out invalidates every outstanding token at once.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Account is the authenticated identity carried through a session.
type Account struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// CredentialStore verifies login credentials against the user collection.
type CredentialStore interface {
	// Verify returns the matching account, or nil when the credentials
	// do not match any user.
	Verify(ctx context.Context, username, password string) (*Account, error)
}

// SessionSlot tracks the currently signed-in account.
type SessionSlot interface {
	// Current returns the active account, or nil when nobody is signed in.
	Current(ctx context.Context) (*Account, error)
	// SetCurrent records acct as the active account; nil clears it.
	SetCurrent(ctx context.Context, acct *Account) error
}

// Claims is the JWT payload for a session token.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session issues and verifies session tokens.
type Session struct {
	creds      CredentialStore
	slot       SessionSlot
	signingKey []byte
	ttl        time.Duration
	logger     zerolog.Logger
}

func NewSession(creds CredentialStore, slot SessionSlot, signingKey []byte, ttl time.Duration, logger zerolog.Logger) *Session {
	return &Session{
		creds:      creds,
		slot:       slot,
		signingKey: signingKey,
		ttl:        ttl,
		logger:     logger,
	}
}

// Login verifies the credentials, records the account as the active
// session and returns the account with a signed token. A nil account
// (with nil error) means the credentials did not match.
func (s *Session) Login(ctx context.Context, username, password string) (*Account, string, error) {
	acct, err := s.creds.Verify(ctx, username, password)
	if err != nil {
		return nil, "", err
	}
	if acct == nil {
		return nil, "", nil
	}
	if err := s.slot.SetCurrent(ctx, acct); err != nil {
		return nil, "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Name: acct.Name,
		Role: acct.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, "", err
	}
	return acct, token, nil
}

// Logout clears the active session, invalidating all outstanding tokens.
func (s *Session) Logout(ctx context.Context) error {
	return s.slot.SetCurrent(ctx, nil)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token,omitempty"`
	User    *Account `json:"user,omitempty"`
}

// HandleLogin handles POST /auth/login.
func (s *Session) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	acct, token, err := s.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("login failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	if acct == nil {
		return c.JSON(http.StatusUnauthorized, loginResponse{
			Success: false,
			Message: "Invalid username or password",
		})
	}

	s.logger.Info().Str("username", acct.Username).Msg("user logged in")
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, User: acct})
}

// HandleLogout handles POST /auth/logout.
func (s *Session) HandleLogout(c echo.Context) error {
	if err := s.Logout(c.Request().Context()); err != nil {
		s.logger.Error().Err(err).Msg("logout failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleMe handles GET /auth/me.
func (s *Session) HandleMe(c echo.Context) error {
	acct := AccountFromContext(c)
	if acct == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return c.JSON(http.StatusOK, acct)
}

// RegisterRoutes wires the session endpoints. Login goes on the open
// group; logout and me require an authenticated session.
func (s *Session) RegisterRoutes(open, authed *echo.Group) {
	open.POST("/auth/login", s.HandleLogin)
	authed.POST("/auth/logout", s.HandleLogout)
	authed.GET("/auth/me", s.HandleMe)
}
