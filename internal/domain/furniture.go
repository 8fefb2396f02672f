package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Furniture struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"size:180;uniqueIndex" validate:"required"`
	Description string    `json:"description" gorm:"type:text" validate:"required"`
	Category    string    `json:"category,omitempty" gorm:"size:100"`
	Dimensions  string    `json:"dimensions" gorm:"size:60" validate:"required,dimensions"`
	Materials   []string  `json:"materials,omitempty" gorm:"type:jsonb;serializer:json"`
	Color       string    `json:"color" gorm:"size:60" validate:"required"`
	Style       string    `json:"style,omitempty" gorm:"size:80"`
	Price       float64   `json:"price" gorm:"type:decimal(12,2)"`
	ImageURL    string    `json:"imageUrl,omitempty" gorm:"size:255"`
	Quantity    int       `json:"quantity,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (f *Furniture) Validate() error { return validateEntity("Furniture", f) }

var FurnitureUpdatableFields = []string{
	"name", "description", "category", "dimensions", "materials",
	"color", "style", "price", "imageUrl", "quantity",
}

// FurnitureFilter composes the optional query terms of the collection
// endpoints. Description matches as a case-insensitive substring.
type FurnitureFilter struct {
	Name        string
	Color       string
	Description string
}

func (f FurnitureFilter) Empty() bool {
	return f.Name == "" && f.Color == "" && f.Description == ""
}

type FurnitureRepo interface {
	Save(ctx context.Context, f *Furniture) error
	FindByID(ctx context.Context, id uuid.UUID) (*Furniture, error)
	FindByName(ctx context.Context, name string) (*Furniture, error)
	FindAllByName(ctx context.Context, name string) ([]Furniture, error)
	List(ctx context.Context, f FurnitureFilter) ([]Furniture, error)
	FirstByFilter(ctx context.Context, f FurnitureFilter) (*Furniture, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
