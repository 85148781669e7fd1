package service

import (
	"time"

	"taskboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire 7 days after issuance.
const tokenTTL = 7 * 24 * time.Hour

var jwtSecret []byte

// InitJWT sets the process-wide signing secret. Config guarantees it is
// nonempty before this is called.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken issues a signed bearer token carrying the user's identity.
func GenerateToken(id int64, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies a bearer token and returns the identity it carries.
// Signature mismatch, malformed structure, wrong signing method and expiry
// all collapse to domain.ErrInvalidToken.
func ParseToken(tokenString string) (domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{ID: int64(id), Username: username}, nil
}
