package authUtils

import (
	"errors"
	"fmt"
	"time"

	"civicreport-be/models"

	"github.com/dgrijalva/jwt-go"
)

const TokenTTL = 72 * time.Hour

type Claims struct {
	UserID string
	Role   models.Role
}

// GenerateToken signs an HS256 token carrying the user id and role.
func GenerateToken(secret, userID string, role models.Role) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies tokenString and returns its claims. Tokens without a
// role are treated as citizen tokens.
func ParseToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("token has no user_id")
	}

	claims := &Claims{UserID: userID, Role: models.RoleCitizen}
	if role, _ := mapClaims["role"].(string); role != "" {
		claims.Role = models.Role(role)
	}
	return claims, nil
}
