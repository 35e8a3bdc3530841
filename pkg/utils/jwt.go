package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/shopright/backend/pkg/errs"
)

// CreateSessionToken mints a session token the way the identity provider does.
// Used by local tooling and tests; production tokens come from the provider.
func CreateSessionToken(externalID string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = externalID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// VerifySessionToken validates an identity-provider session token and returns
// the external user id carried in its sub claim.
func VerifySessionToken(tokenString string, jwtSecretKey string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrNotLoggedIn
	}

	externalID, ok := claims["sub"].(string)
	if !ok || externalID == "" {
		return "", errs.ErrNotLoggedIn
	}

	return externalID, nil
}
