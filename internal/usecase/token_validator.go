package usecase

import (
	"salon-booking/internal/pkg/jwt"
)

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return jwtService
}
