package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OwnerIdentity is the result of verifying a session credential.
type OwnerIdentity struct {
	ID    uint
	Email string
}

var (
	jwtSecret       string
	expirationHours int
)

func Init(secret string, expiration int) error {
	if secret == "" {
		return fmt.Errorf("JWT signing key is empty")
	}
	jwtSecret = secret
	expirationHours = expiration
	if expirationHours <= 0 {
		expirationHours = 168
	}
	return nil
}

func GenerateJWT(ownerID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"owner_id": ownerID,
		"email":    email,
		"exp":      time.Now().Add(time.Hour * time.Duration(expirationHours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// Verify validates an opaque credential and yields the embedded owner
// identity. Missing, malformed, tampered or expired input is a normal
// outcome, reported as ok == false, never as a panic or error.
func Verify(credential string) (OwnerIdentity, bool) {
	if credential == "" {
		return OwnerIdentity{}, false
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return OwnerIdentity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return OwnerIdentity{}, false
	}

	ownerIDFloat, ok := claims["owner_id"].(float64)

	if !ok {
		return OwnerIdentity{}, false
	}

	email, _ := claims["email"].(string)

	return OwnerIdentity{ID: uint(ownerIDFloat), Email: email}, true
}
