package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dlevchenko/airagency/internal/domain"
)

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByNaturalKey(ctx context.Context, customerID, flightID int64, date time.Time) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_id, flight_id, date, created_at, updated_at FROM bookings ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.FlightID, &b.Date, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, customer_id, flight_id, date, created_at, updated_at FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.CustomerID, &b.FlightID, &b.Date, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) GetByNaturalKey(ctx context.Context, customerID, flightID int64, date time.Time) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, customer_id, flight_id, date, created_at, updated_at FROM bookings WHERE customer_id=$1 AND flight_id=$2 AND date=$3 LIMIT 1`, customerID, flightID, date)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.CustomerID, &b.FlightID, &b.Date, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (customer_id, flight_id, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, booking.CustomerID, booking.FlightID, booking.Date).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
