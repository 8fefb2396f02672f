package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maderal/muebleria/internal/domain"
)

type FurnitureRepo struct{ db *gorm.DB }

func NewFurnitureRepo(db *gorm.DB) *FurnitureRepo { return &FurnitureRepo{db: db} }

func (r *FurnitureRepo) Save(ctx context.Context, f *domain.Furniture) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FurnitureRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Furniture, error) {
	var f domain.Furniture
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &f, nil
}

func (r *FurnitureRepo) FindByName(ctx context.Context, name string) (*domain.Furniture, error) {
	var f domain.Furniture
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, errors.New("name vacío")
	}
	if err := r.db.WithContext(ctx).First(&f, "name = ?", n).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &f, nil
}

// FindAllByName returns every record sharing the name. Name is supposed to
// be unique, but resolution does not lean on that: all matches count.
func (r *FurnitureRepo) FindAllByName(ctx context.Context, name string) ([]domain.Furniture, error) {
	var list []domain.Furniture
	if err := r.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *FurnitureRepo) List(ctx context.Context, f domain.FurnitureFilter) ([]domain.Furniture, error) {
	var list []domain.Furniture
	if err := r.query(ctx, f).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *FurnitureRepo) FirstByFilter(ctx context.Context, f domain.FurnitureFilter) (*domain.Furniture, error) {
	var rec domain.Furniture
	if err := r.query(ctx, f).Order("name asc").First(&rec).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &rec, nil
}

func (r *FurnitureRepo) query(ctx context.Context, f domain.FurnitureFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Furniture{})
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.Color != "" {
		q = q.Where("color = ?", f.Color)
	}
	if f.Description != "" {
		q = q.Where("LOWER(description) LIKE LOWER(?)", "%"+f.Description+"%")
	}
	return q
}

func (r *FurnitureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Furniture{}, "id = ?", id).Error
}
