package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dlevchenko/airagency/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type PGCustomerRepository struct {
	db DB
}

func NewCustomerRepository(db DB) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, phone_number, created_at, updated_at FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone_number, created_at, updated_at FROM customers WHERE id=$1`, id)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone_number, created_at, updated_at FROM customers WHERE email=$1 LIMIT 1`, email)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	err := r.db.QueryRow(ctx, `INSERT INTO customers (name, email, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, customer.Name, customer.Email, customer.PhoneNumber).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// Delete removes the customer and their bookings in one transaction.
func (r *PGCustomerRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE customer_id=$1`, id); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
