package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// AccessTokenValidity is how long an access token stays usable.
	AccessTokenValidity = time.Hour * 24
	// RefreshTokenValidity is how long a refresh token stays usable.
	RefreshTokenValidity = time.Hour * 24 * 7
)

// GenerateTokenPair returns an access token and a refresh token for the user.
func GenerateTokenPair(email string, secret string, userID uint, username string) (string, string, error) {
	accessToken, err := GenerateToken(email, secret, userID, username)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(RefreshTokenValidity).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func GenerateToken(email string, secret string, userID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"email":    email,
		"username": username,
		"exp":      time.Now().Add(AccessTokenValidity).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateAndGetClaims checks the token signature and expiry and returns the
// embedded claims.
func ValidateAndGetClaims(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
