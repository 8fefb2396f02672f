package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/maderal/muebleria/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

func (uc *CustomerUC) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, c); err != nil {
		return err
	}
	return uc.Customers.Save(ctx, c)
}

// Update re-runs validation and uniqueness over the already-patched record.
func (uc *CustomerUC) Update(ctx context.Context, c *domain.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, c); err != nil {
		return err
	}
	return uc.Customers.Save(ctx, c)
}

func (uc *CustomerUC) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return uc.Customers.FindByID(ctx, id)
}

func (uc *CustomerUC) GetByNIF(ctx context.Context, nif string) (*domain.Customer, error) {
	return uc.Customers.FindByNIF(ctx, nif)
}

func (uc *CustomerUC) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := uc.Customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Customers.Delete(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CustomerUC) DeleteByNIF(ctx context.Context, nif string) (*domain.Customer, error) {
	c, err := uc.Customers.FindByNIF(ctx, nif)
	if err != nil {
		return nil, err
	}
	if err := uc.Customers.Delete(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CustomerUC) checkUnique(ctx context.Context, c *domain.Customer) error {
	if other, err := uc.Customers.FindByPhone(ctx, c.TelephoneNumber); err == nil && other.ID != c.ID {
		return domain.DuplicateError("Customer", "telephoneNumber")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if c.Email != "" {
		if other, err := uc.Customers.FindByEmail(ctx, c.Email); err == nil && other.ID != c.ID {
			return domain.DuplicateError("Customer", "email")
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}
	if other, err := uc.Customers.FindByNIF(ctx, c.NIF); err == nil && other.ID != c.ID {
		return domain.DuplicateError("Customer", "nif")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
