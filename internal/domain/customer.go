package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"size:140" validate:"required"`
	Surname         string    `json:"surname" gorm:"size:140" validate:"required"`
	TelephoneNumber string    `json:"telephoneNumber" gorm:"size:60;uniqueIndex" validate:"required,telephone"`
	Email           string    `json:"email,omitempty" gorm:"size:140" validate:"omitempty,emailfmt"`
	Address         string    `json:"address" gorm:"size:255" validate:"required"`
	PostalCode      int       `json:"postalCode" validate:"required"`
	City            string    `json:"city" gorm:"size:120" validate:"required"`
	Gender          string    `json:"gender,omitempty" gorm:"size:10" validate:"omitempty,gender"`
	NIF             string    `json:"nif" gorm:"size:30;uniqueIndex" validate:"required,nif,alphanum"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (c *Customer) Validate() error { return validateEntity("Customer", c) }

// Allow-list for PATCH bodies. nif is the business key and stays immutable.
var CustomerUpdatableFields = []string{
	"name", "surname", "telephoneNumber", "email", "address", "postalCode", "city", "gender",
}

type CustomerRepo interface {
	Save(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByNIF(ctx context.Context, nif string) (*Customer, error)
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
