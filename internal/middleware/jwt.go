package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "sessionid"
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/accounts/login/"

	identityKey = "identity"
)

var ErrInvalidSession = errors.New("invalid session")

// Identity is the authenticated driver behind a request.
type Identity struct {
	DriverID uint
	Username string
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies HS256 session tokens stored in a cookie.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

func (s *Sessions) GenerateToken(id Identity) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id.DriverID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Sessions) ValidateToken(tokenStr string) (Identity, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return Identity{}, ErrInvalidSession
	}

	driverID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || driverID == 0 {
		return Identity{}, fmt.Errorf("%w: bad subject %q", ErrInvalidSession, claims.Subject)
	}
	return Identity{DriverID: uint(driverID), Username: claims.Username}, nil
}

// Login sets the session cookie for id.
func (s *Sessions) Login(c *gin.Context, id Identity) error {
	token, err := s.GenerateToken(id)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
	return nil
}

// Logout expires the session cookie.
func (s *Sessions) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.secure, true)
}

// Authenticate resolves the session cookie into an Identity on the context.
// Requests without a valid session pass through anonymously, as do sessions
// rejected by verify (e.g. of a driver that has since been deleted).
func (s *Sessions) Authenticate(verify func(ctx context.Context, id Identity) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(SessionCookie); err == nil && tokenStr != "" {
			id, err := s.ValidateToken(tokenStr)
			if err == nil && (verify == nil || verify(c.Request.Context(), id)) {
				c.Set(identityKey, id)
			}
		}
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page, keeping the
// requested path in `next`.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated driver, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
