package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateEditorToken creates a JWT token granting edit-mode access for the
// visual authoring tool.
func GenerateEditorToken(sessionID, issuer, jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sessionID,
		"role": "editor",
		"iss":  issuer,
		"iat":  time.Now().UTC().Unix(),
		"exp":  time.Now().UTC().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// EditorRoleFromClaims extracts the role claim from a validated token.
func EditorRoleFromClaims(claims jwt.MapClaims) string {
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}
