package user

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
)

// bcrypt operates on at most 72 bytes
const maxPasswordLength = 72

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	if len(s) > maxPasswordLength {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

// Identity is the resolved caller of a privileged operation, produced by
// token validation and consumed by role/ownership checks.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

func (i Identity) IsHost() bool  { return i.Role == RoleHost }
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
