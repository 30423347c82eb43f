package request

import (
	"gaya-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return toCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r RegisterRequest) ToDomain() (user.Credentials, error) {
	return toCredentials(r.Email, r.Password)
}

func toCredentials(rawEmail, rawPassword string) (user.Credentials, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return user.Credentials{}, err
	}

	password, err := user.NewPassword(rawPassword)
	if err != nil {
		return user.Credentials{}, err
	}

	return user.NewCredentials(email, password), nil
}
