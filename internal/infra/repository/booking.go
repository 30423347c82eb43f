package repository

import (
	"context"
	"errors"
	"time"

	"gaya-booking/internal/domain/booking"
	"gaya-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const insertBookingIfAbsent = `
INSERT INTO bookings (id, property_id, user_id, start_date, end_date, guests, total_price, status, payment_intent_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id, payment_intent_id) WHERE payment_intent_id IS NOT NULL DO NOTHING
RETURNING id
`

const selectBookingByIntent = `
SELECT id, property_id, user_id, start_date, end_date, guests, total_price, status, payment_intent_id, created_at, updated_at
FROM bookings
WHERE user_id = $1 AND payment_intent_id = $2
`

const selectBookingByID = `
SELECT id, property_id, user_id, start_date, end_date, guests, total_price, status, payment_intent_id, created_at, updated_at
FROM bookings
WHERE id = $1
`

const selectBookingsByUserID = `
SELECT id, property_id, user_id, start_date, end_date, guests, total_price, status, payment_intent_id, created_at, updated_at
FROM bookings
WHERE user_id = $1
ORDER BY start_date DESC
`

const updateBookingStatus = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1
`

// CreateIfAbsent leans on the store's conditional insert: the partial unique
// index on (user_id, payment_intent_id) makes concurrent duplicate attempts
// collapse into one row, and the loser reads the winner's row back.
func (r *BookingRepository) CreateIfAbsent(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	var insertedID uuid.UUID
	err := r.pool.QueryRow(ctx, insertBookingIfAbsent,
		b.ID(),
		b.PropertyID(),
		b.UserID(),
		b.StartDate(),
		b.EndDate(),
		b.Guests(),
		b.TotalPrice(),
		b.Status().String(),
		b.PaymentIntentID(),
	).Scan(&insertedID)

	if err == nil {
		return r.FindByID(ctx, insertedID)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict path: a booking for this (user, intent) already exists.
		if b.PaymentIntentID() == nil {
			return nil, infra.WrapErr(infra.KindDBFailure, "insert returned no row without idempotency key", err)
		}
		existing, findErr := r.findByIntent(ctx, b.UserID(), *b.PaymentIntentID())
		if findErr != nil {
			return nil, findErr
		}
		return existing, nil
	}

	return nil, wrapPgErr("failed to insert booking", err)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, selectBookingByID, id)
	entity, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, wrapPgErr("failed to find booking by id", err)
	}
	return entity, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, selectBookingsByUserID, userID)
	if err != nil {
		return nil, wrapPgErr("failed to query user bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		entity, err := scanBooking(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan booking row", err)
		}
		bookings = append(bookings, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate booking rows", err)
	}

	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx, updateBookingStatus, id, status.String())
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) findByIntent(ctx context.Context, userID uuid.UUID, intentID string) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, selectBookingByIntent, userID, intentID)
	entity, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapErr(infra.KindNotFound, "booking not found for payment intent", err)
		}
		return nil, wrapPgErr("failed to find booking by payment intent", err)
	}
	return entity, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, propertyID, userID uuid.UUID
		startDate, endDate     time.Time
		guests                 int32
		totalPrice             int64
		status                 string
		paymentIntentID        *string
		createdAt, updatedAt   time.Time
	)

	err := row.Scan(&id, &propertyID, &userID, &startDate, &endDate, &guests, &totalPrice, &status, &paymentIntentID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, propertyID, userID,
		startDate, endDate,
		guests, totalPrice,
		booking.Status(status),
		paymentIntentID,
		createdAt, updatedAt,
	), nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapErr(infra.KindDuplicateKey, msg, err)
		case "23503":
			return infra.WrapErr(infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapErr(infra.KindDBFailure, msg, err)
}
