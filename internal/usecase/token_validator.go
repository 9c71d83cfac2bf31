package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"gin-auction-service/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, jwt.ErrInvalidToken
	}
	return claims.UserID, nil
}
