package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradeacademy/internal/infra"
	"tradeacademy/internal/usecase"
)

const shellContextKey = "shell"

// SessionClaims represents the session token claims
type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

// SessionConfig configures the session cookie
type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
	Now        func() time.Time // defaults to time.Now
}

// GenerateSessionToken signs a token carrying the session id
func GenerateSessionToken(secret string, sessionID uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token against now and returns its claims
func ParseSessionToken(secret, tokenString string, now time.Time) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == uuid.Nil || claims.ExpiresAt == nil {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

// needsRefresh reports whether less than half of the token lifetime remains
func needsRefresh(claims *SessionClaims, ttl time.Duration, now time.Time) bool {
	return claims.ExpiresAt.Time.Sub(now) < ttl/2
}

// Session resolves the dashboard shell of the request's session cookie.
// A missing, expired or tampered cookie starts a new session. The cookie is
// reissued once half its lifetime has passed, so expiry slides with activity.
func Session(cfg SessionConfig, store *infra.SessionStore, logger *zap.Logger) echo.MiddlewareFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = "session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := cfg.Now()
			sessionID := uuid.Nil
			refresh := true
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				claims, err := ParseSessionToken(cfg.Secret, cookie.Value, now)
				if err != nil {
					logger.Debug("discarding session cookie", zap.Error(err))
				} else {
					sessionID = claims.SessionID
					refresh = needsRefresh(claims, cfg.TTL, now)
				}
			}

			if sessionID == uuid.Nil {
				sessionID = uuid.New()
			}

			shell, created := store.GetOrCreate(sessionID)
			if created || refresh {
				token, err := GenerateSessionToken(cfg.Secret, sessionID, cfg.TTL, now)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
				}
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int(cfg.TTL.Seconds()),
				})
			}

			c.Set(shellContextKey, shell)
			return next(c)
		}
	}
}

// GetShell extracts the session shell from echo context
func GetShell(c echo.Context) (*usecase.Shell, error) {
	shell, ok := c.Get(shellContextKey).(*usecase.Shell)
	if !ok {
		return nil, fmt.Errorf("session not found in context")
	}
	return shell, nil
}
