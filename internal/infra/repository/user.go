package repository

import (
	"context"
	"errors"

	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const insertUser = `
INSERT INTO users (email, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id
`

const selectUserByEmail = `
SELECT id, email, role, password_hash
FROM users
WHERE email = $1
`

const selectUserByID = `
SELECT id, email, role
FROM users
WHERE id = $1
`

func (r *UserRepository) Create(ctx context.Context, email user.Email, passwordHash string, role user.Role) (*user.Identity, error) {
	identity := user.Identity{Email: email.String(), Role: role}
	err := r.pool.QueryRow(ctx, insertUser, email.String(), passwordHash, role.String()).
		Scan(&identity.ID)
	if err != nil {
		return nil, wrapPgErr("failed to create user", err)
	}
	return &identity, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.Identity, string, error) {
	var (
		identity     user.Identity
		roleStr      string
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, selectUserByEmail, email.String()).
		Scan(&identity.ID, &identity.Email, &roleStr, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapErr(infra.KindNotFound, "user not found", err)
		}
		return nil, "", wrapPgErr("failed to find user by email", err)
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, "", infra.WrapErr(infra.KindDBFailure, "stored role is invalid", err)
	}
	identity.Role = role

	return &identity, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.Identity, error) {
	var (
		identity user.Identity
		roleStr  string
	)
	err := r.pool.QueryRow(ctx, selectUserByID, id).
		Scan(&identity.ID, &identity.Email, &roleStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapErr(infra.KindNotFound, "user not found", err)
		}
		return nil, wrapPgErr("failed to find user by id", err)
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapErr(infra.KindDBFailure, "stored role is invalid", err)
	}
	identity.Role = role

	return &identity, nil
}
