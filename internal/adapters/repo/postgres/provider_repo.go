package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maderal/muebleria/internal/domain"
)

type ProviderRepo struct{ db *gorm.DB }

func NewProviderRepo(db *gorm.DB) *ProviderRepo { return &ProviderRepo{db: db} }

func (r *ProviderRepo) Save(ctx context.Context, p *domain.Provider) error {
	p.Name = strings.ToLower(p.Name)
	p.Address = strings.ToLower(p.Address)
	p.Email = strings.ToLower(p.Email)
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProviderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	var p domain.Provider
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (r *ProviderRepo) FindByCIF(ctx context.Context, cif string) (*domain.Provider, error) {
	var p domain.Provider
	c := strings.TrimSpace(cif)
	if c == "" {
		return nil, errors.New("cif vacío")
	}
	if err := r.db.WithContext(ctx).First(&p, "cif = ?", c).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (r *ProviderRepo) FindByPhone(ctx context.Context, phone string) (*domain.Provider, error) {
	var p domain.Provider
	if err := r.db.WithContext(ctx).First(&p, "telephone_number = ?", strings.TrimSpace(phone)).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (r *ProviderRepo) FindByEmail(ctx context.Context, email string) (*domain.Provider, error) {
	var p domain.Provider
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return nil, errors.New("email vacío")
	}
	if err := r.db.WithContext(ctx).First(&p, "LOWER(email) = ?", e).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (r *ProviderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Provider{}, "id = ?", id).Error
}
