// Package auth implement access token handling and the login/logout/session
// endpoints.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// JwtIssuer identifies tokens minted by this service.
const JwtIssuer = "hirelite"

var secretKey = os.Getenv("SECRET_KEY")

// GenerateToken signs an HS256 access token whose subject is the session id.
func GenerateToken(sessionID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    JwtIssuer,
		Subject:   sessionID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %s", err)
	}
	return signed, nil
}

// ValidatedToken parses and verifies an access token, returning it with
// registered claims populated.
func ValidatedToken(encoded string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encoded, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isValid := token.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("invalid token signing method")
		}
		return []byte(secretKey), nil
	})
}
