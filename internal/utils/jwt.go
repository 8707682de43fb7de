package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken for missing inputs.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrInvalidClaims is returned when a correctly signed token carries an
	// empty subject or an unknown role.
	ErrInvalidClaims = errors.New("invalid token claims")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - role           : the access tier of the user
//   - IssuedAt  (iat): issuedAt
//   - ID        (jti): a random UUID, so two tokens issued in the same second differ
//   - ExpiresAt (exp): issuedAt plus ttl, omitted when ttl is zero
//
// Returns ErrInvalidJWTParams if issuer, userID or signKey are empty, the
// role is unknown or ttl is negative.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("lost-found", id, models.RoleUser, time.Now(), time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, role models.Role, issuedAt time.Time, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || signKey == "" || !role.Valid() || ttl < 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := models.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(issuedAt),
			ID:       uuid.NewString(),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation order follows jwt/v5: the signature is checked first, so a
// tampered token is rejected before its expiry is looked at. Only HS256 is
// accepted and base64 segments are decoded strictly. now is used as the
// reference time for exp and iat checks.
//
// Signature failures wrap jwt.ErrTokenSignatureInvalid (or another jwt
// parsing error); an expired token wraps jwt.ErrTokenExpired.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := models.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return models.Token{}, ErrInvalidClaims
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
