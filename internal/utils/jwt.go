package utils

import (
	"fmt"
	"time"

	"secure_vault/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims are the claims embedded in a session token. Either Email or
// PhoneNumber is set, matching the user's auth provider.
type JWTClaims struct {
	UserID       string `json:"userId"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	AuthProvider string `json:"authProvider"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey       string
	expirationHours int64
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// GenerateToken signs a new session token for the given user
func (ju *JWTUtil) GenerateToken(user *model.User) (string, error) {
	claims := &JWTClaims{
		UserID:       user.ID,
		AuthProvider: user.AuthProvider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(ju.expirationHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}
	if user.Email != nil {
		claims.Email = *user.Email
	}
	if user.PhoneNumber != nil {
		claims.PhoneNumber = *user.PhoneNumber
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks signature and expiry and returns the decoded claims.
// Expired tokens are detectable via errors.Is(err, jwt.ErrTokenExpired).
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
