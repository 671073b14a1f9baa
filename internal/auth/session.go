package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"secureapp/internal/model"
)

const (
	// CookieName carries the session token.
	CookieName = "secure_app_session"

	// SessionTTL is the absolute session lifetime. Expiry is fixed at
	// issue time and is not extended by activity.
	SessionTTL = 7 * 24 * time.Hour
)

// SessionClaims is the session payload carried in the cookie. It mirrors
// the user row as of login time; role changes take effect at next login.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions signs and validates the stateless session cookie. No copy of
// session state exists server-side, so a session ends only by expiry or
// by rotating the secret.
type Sessions struct {
	secret []byte
	secure bool
}

// NewSessions creates the session service. secure controls the cookie's
// Secure attribute and should be set for TLS deployments.
func NewSessions(secret string, secure bool) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		secure: secure,
	}
}

// Issue signs a session token for the given user.
func (s *Sessions) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a session token and returns its claims.
func (s *Sessions) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Read returns the session carried by the request, or nil for anonymous.
// Missing, tampered and expired cookies all read as anonymous; decode
// failures never escape this boundary.
func (s *Sessions) Read(c echo.Context) *SessionClaims {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := s.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

// Write sets the session cookie on the response.
func (s *Sessions) Write(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear invalidates the session cookie so subsequent reads see anonymous.
func (s *Sessions) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
