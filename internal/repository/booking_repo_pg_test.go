package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlevchenko/airagency/internal/domain"
)

var bookingColumns = []string{"id", "customer_id", "flight_id", "date", "created_at", "updated_at"}

func TestBookingRepository_List_OrderedByDateThenID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	early := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM bookings ORDER BY date ASC, id ASC`).
		WillReturnRows(pgxmock.NewRows(bookingColumns).
			AddRow(int64(5), int64(1), int64(2), early, now, now).
			AddRow(int64(2), int64(1), int64(3), late, now, now))

	repo := NewBookingRepository(mock)
	bookings, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(5), bookings[0].ID)
	assert.Equal(t, early, bookings[0].Date)
	assert.Equal(t, int64(2), bookings[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByNaturalKey_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM bookings WHERE customer_id=`).
		WithArgs(int64(1), int64(2), date).
		WillReturnError(pgx.ErrNoRows)

	repo := NewBookingRepository(mock)
	_, err = repo.GetByNaturalKey(context.Background(), 1, 2, date)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM bookings WHERE id=`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewBookingRepository(mock)
	err = repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM bookings WHERE id=`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewBookingRepository(mock)
	err = repo.Delete(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
