package apitest

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims JWT claims фейкового сервера
type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Generation int    `json:"gen"`
	jwt.RegisteredClaims
}

// errStaleToken токен выпущен до ExpireTokens
var errStaleToken = errors.New("token generation is stale")

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (ti tokenIssuer) issue(userID, email string, generation int, now time.Time) (string, error) {
	claims := Claims{
		UserID:     userID,
		Email:      email,
		Generation: generation,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "habittracker-apitest",
			Subject:   userID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// parse checks the signature. Expiry is checked only when checkExpiry is set:
// refresh accepts expired tokens.
func (ti tokenIssuer) parse(tokenString string, checkExpiry bool) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return ti.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
