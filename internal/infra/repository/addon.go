package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AddonRepository struct {
	pool *pgxpool.Pool
}

func NewAddonRepository(pool *pgxpool.Pool) *AddonRepository {
	return &AddonRepository{pool: pool}
}

const selectAddonCatalog = `
SELECT id, price
FROM addons
`

// Catalog loads the full addon price list. The catalog is small and changes
// rarely; pricing tolerates ids the catalog no longer carries.
func (r *AddonRepository) Catalog(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, selectAddonCatalog)
	if err != nil {
		return nil, wrapPgErr("failed to query addon catalog", err)
	}
	defer rows.Close()

	catalog := make(map[string]int64)
	for rows.Next() {
		var (
			id    string
			price int64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, wrapPgErr("failed to scan addon row", err)
		}
		catalog[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate addon rows", err)
	}

	return catalog, nil
}
