package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

const (
	profileCookieName = "profile_id"
	profileContextKey = "profile"
	profileCookieTTL  = 365 * 24 * time.Hour
	profileIssuer     = "ticket_storefront"
)

// profileMiddleware resolves the browser profile from its signed cookie,
// issuing a new profile on first visit or when the cookie does not verify.
func profileMiddleware(storefront *services.Storefront, secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profileID := ""
			if cookie, err := c.Cookie(profileCookieName); err == nil {
				profileID, _ = parseProfileToken(cookie.Value, secret)
			}

			if profileID == "" {
				profileID = uuid.NewString()

				token, err := signProfileToken(profileID, secret, time.Now())
				if err != nil {
					return fmt.Errorf("signing profile cookie: %w", err)
				}

				c.SetCookie(&http.Cookie{
					Name:     profileCookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(profileCookieTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(profileContextKey, storefront.Profile(c.Request().Context(), profileID))
			return next(c)
		}
	}
}

func signProfileToken(profileID string, secret []byte, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   profileID,
		Issuer:    profileIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(profileCookieTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseProfileToken(token string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(profileIssuer))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid profile token: %w", err)
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("invalid profile id: %w", err)
	}

	return claims.Subject, nil
}

func profileFrom(c echo.Context) *services.Profile {
	return c.Get(profileContextKey).(*services.Profile)
}
