package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maderal/muebleria/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Save(ctx context.Context, c *domain.Customer) error {
	if c.Email != "" {
		c.Email = strings.ToLower(c.Email)
	}
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *CustomerRepo) FindByNIF(ctx context.Context, nif string) (*domain.Customer, error) {
	var c domain.Customer
	n := strings.TrimSpace(nif)
	if n == "" {
		return nil, errors.New("nif vacío")
	}
	if err := r.db.WithContext(ctx).First(&c, "nif = ?", n).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *CustomerRepo) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "telephone_number = ?", strings.TrimSpace(phone)).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return nil, errors.New("email vacío")
	}
	if err := r.db.WithContext(ctx).First(&c, "LOWER(email) = ?", e).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id).Error
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
