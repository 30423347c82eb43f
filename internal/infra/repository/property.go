package repository

import (
	"context"
	"errors"

	"gaya-booking/internal/domain/property"
	"gaya-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

const selectPropertyByID = `
SELECT id, host_id, title, price_per_night, currency
FROM properties
WHERE id = $1
`

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	var p property.Property
	err := r.pool.QueryRow(ctx, selectPropertyByID, id).
		Scan(&p.ID, &p.HostID, &p.Title, &p.PricePerNight, &p.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapErr(infra.KindNotFound, "property not found", err)
		}
		return nil, wrapPgErr("failed to find property by id", err)
	}

	return &p, nil
}
