package usecase

import (
	"context"
	"errors"

	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/pkg/errs"
	"gaya-booking/internal/pkg/jwt"
	"gaya-booking/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, email user.Email, passwordHash string, role user.Role) (*user.Identity, error)
	// FindByEmail returns the identity plus the stored password hash.
	FindByEmail(ctx context.Context, email user.Email) (*user.Identity, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.Identity, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, credentials user.Credentials) (string, *user.Identity, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *user.Identity, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.Identity, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a guest account and signs the new user in. Host and admin
// accounts are provisioned out of band.
func (a *authUseCaseImpl) Register(ctx context.Context, credentials user.Credentials) (string, *user.Identity, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to hash password")
	}

	identity, err := a.userRepo.Create(ctx, credentials.Email(), hash, user.RoleGuest)
	if err != nil {
		if isDuplicateKey(err) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, errs.Wrap(err, "failed to create user")
	}

	token, err := a.jwtService.GenerateToken(identity.ID, identity.Email, identity.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, identity, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *user.Identity, error) {
	identity, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if isNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(identity.ID, identity.Email, identity.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, identity, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.Identity, error) {
	identity, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return identity, nil
}
