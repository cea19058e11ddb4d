package domain

import "time"

type Customer struct {
	ID          int64     `validate:"-"`
	Name        string    `validate:"required,max=50,personname"`
	Email       string    `validate:"required,email"`
	PhoneNumber string    `validate:"required,phonenumber"`
	CreatedAt   time.Time `validate:"-"`
	UpdatedAt   time.Time `validate:"-"`
}
