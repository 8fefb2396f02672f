package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
)

type ProviderUC struct {
	Providers domain.ProviderRepo
}

func (uc *ProviderUC) Create(ctx context.Context, p *domain.Provider) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, p); err != nil {
		return err
	}
	return uc.Providers.Save(ctx, p)
}

func (uc *ProviderUC) Update(ctx context.Context, p *domain.Provider) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, p); err != nil {
		return err
	}
	return uc.Providers.Save(ctx, p)
}

func (uc *ProviderUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	return uc.Providers.FindByID(ctx, id)
}

func (uc *ProviderUC) GetByCIF(ctx context.Context, cif string) (*domain.Provider, error) {
	return uc.Providers.FindByCIF(ctx, cif)
}

func (uc *ProviderUC) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	p, err := uc.Providers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Providers.Delete(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProviderUC) DeleteByCIF(ctx context.Context, cif string) (*domain.Provider, error) {
	p, err := uc.Providers.FindByCIF(ctx, cif)
	if err != nil {
		return nil, err
	}
	if err := uc.Providers.Delete(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProviderUC) checkUnique(ctx context.Context, p *domain.Provider) error {
	if other, err := uc.Providers.FindByPhone(ctx, p.TelephoneNumber); err == nil && other.ID != p.ID {
		return domain.DuplicateError("Provider", "telephoneNumber")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if other, err := uc.Providers.FindByEmail(ctx, p.Email); err == nil && other.ID != p.ID {
		return domain.DuplicateError("Provider", "email")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if other, err := uc.Providers.FindByCIF(ctx, p.CIF); err == nil && other.ID != p.ID {
		return domain.DuplicateError("Provider", "cif")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
