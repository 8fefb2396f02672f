package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
)

type FurnitureUC struct {
	Furnitures domain.FurnitureRepo
}

func (uc *FurnitureUC) Create(ctx context.Context, f *domain.Furniture) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, f); err != nil {
		return err
	}
	return uc.Furnitures.Save(ctx, f)
}

func (uc *FurnitureUC) Update(ctx context.Context, f *domain.Furniture) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, f); err != nil {
		return err
	}
	return uc.Furnitures.Save(ctx, f)
}

// Upsert creates or overwrites by name. Used by the bulk catalog import.
func (uc *FurnitureUC) Upsert(ctx context.Context, f *domain.Furniture) (created bool, err error) {
	existing, err := uc.Furnitures.FindByName(ctx, f.Name)
	switch {
	case err == nil:
		f.ID = existing.ID
		f.CreatedAt = existing.CreatedAt
		return false, uc.Update(ctx, f)
	case errors.Is(err, domain.ErrNotFound):
		return true, uc.Create(ctx, f)
	default:
		return false, err
	}
}

func (uc *FurnitureUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Furniture, error) {
	return uc.Furnitures.FindByID(ctx, id)
}

// Filter returns every match; empty filters are the caller's problem.
func (uc *FurnitureUC) Filter(ctx context.Context, f domain.FurnitureFilter) ([]domain.Furniture, error) {
	return uc.Furnitures.List(ctx, f)
}

// FirstByFilter backs the filter-keyed PATCH/DELETE endpoints, which act on
// the first match only.
func (uc *FurnitureUC) FirstByFilter(ctx context.Context, f domain.FurnitureFilter) (*domain.Furniture, error) {
	return uc.Furnitures.FirstByFilter(ctx, f)
}

func (uc *FurnitureUC) All(ctx context.Context) ([]domain.Furniture, error) {
	return uc.Furnitures.List(ctx, domain.FurnitureFilter{})
}

func (uc *FurnitureUC) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Furniture, error) {
	f, err := uc.Furnitures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Furnitures.Delete(ctx, f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *FurnitureUC) DeleteFirstByFilter(ctx context.Context, filter domain.FurnitureFilter) (*domain.Furniture, error) {
	f, err := uc.Furnitures.FirstByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := uc.Furnitures.Delete(ctx, f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *FurnitureUC) checkUnique(ctx context.Context, f *domain.Furniture) error {
	if other, err := uc.Furnitures.FindByName(ctx, f.Name); err == nil && other.ID != f.ID {
		return domain.DuplicateError("Furniture", "name")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
