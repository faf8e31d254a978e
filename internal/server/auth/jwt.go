// Package auth signs and verifies the dashboard session cookie. The cookie
// value is an HS256 JWT whose only custom claim is the browser session id.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the standard claims plus the session id.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// GenerateToken signs a token for sessionID. It carries no expiry: the
// session registry decides how long an idle session lives.
func GenerateToken(sessionID string, secretKey []byte, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
			Issuer:   common.AppName,
		},
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSessionIDFromToken verifies tokenString and returns its session id.
// Every failure wraps common.ErrInvalidSession.
func GetSessionIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(common.AppName))
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrInvalidSession, err)
	}

	if !token.Valid || claims.SessionID == "" {
		return "", common.ErrInvalidSession
	}

	return claims.SessionID, nil
}

// IsInvalid reports whether err came from a rejected cookie.
func IsInvalid(err error) bool {
	return errors.Is(err, common.ErrInvalidSession)
}
