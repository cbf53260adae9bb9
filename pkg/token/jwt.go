package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

// Claims carries the identity claim inside a signed session token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Manager issues and verifies self-contained session tokens. No session
// state is kept server-side.
type Manager interface {
	Generate(identity utils.Identity) (string, error)
	Parse(tokenString string) (utils.Identity, error)
}

// JWT implements Manager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	expiry    time.Duration
}

func NewJWT(secretKey string, expiryHours int) *JWT {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &JWT{
		secretKey: secretKey,
		expiry:    time.Duration(expiryHours) * time.Hour,
	}
}

// Generate signs a token carrying the identity claim.
func (j *JWT) Generate(identity utils.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
		},
		Email: identity.Email,
		Role:  identity.Role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a token and extracts the identity claim.
func (j *JWT) Parse(tokenString string) (utils.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return utils.Identity{}, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return utils.Identity{}, fmt.Errorf("session token is invalid")
	}

	return utils.Identity{Email: claims.Email, Role: claims.Role}, nil
}
