package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents the claim set carried inside an issued token
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
