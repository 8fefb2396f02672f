package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Provider name, address and email are stored lowercased, matching what the
// rest of the fleet expects when it joins on these columns.
type Provider struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"size:140" validate:"required"`
	Address         string    `json:"address" gorm:"size:255" validate:"required"`
	TelephoneNumber string    `json:"telephoneNumber" gorm:"size:60;uniqueIndex" validate:"required,telephone"`
	Email           string    `json:"email" gorm:"size:140;uniqueIndex" validate:"required,emailfmt"`
	Website         string    `json:"website,omitempty" gorm:"size:255"`
	CIF             string    `json:"cif" gorm:"size:30;uniqueIndex" validate:"required,cif,alphanum"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (p *Provider) Validate() error { return validateEntity("Provider", p) }

// Allow-list for PATCH bodies. cif is the business key and stays immutable.
var ProviderUpdatableFields = []string{
	"name", "address", "telephoneNumber", "email", "website",
}

type ProviderRepo interface {
	Save(ctx context.Context, p *Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)
	FindByCIF(ctx context.Context, cif string) (*Provider, error)
	FindByPhone(ctx context.Context, phone string) (*Provider, error)
	FindByEmail(ctx context.Context, email string) (*Provider, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
