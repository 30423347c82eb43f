package usecase

import (
	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token into a caller identity for the auth
// middleware. It is the only entry point into every privileged handler.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Identity{}, err
	}

	return user.Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  role,
	}, nil
}
