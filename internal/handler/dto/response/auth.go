package response

import (
	"gaya-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewUserResponse(identity *user.Identity) UserResponse {
	return UserResponse{
		ID:    identity.ID,
		Email: identity.Email,
		Role:  identity.Role.String(),
	}
}

func NewLoginResponse(token string, identity *user.Identity) LoginResponse {
	return LoginResponse{
		Token: token,
		User:  NewUserResponse(identity),
	}
}
