package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maderal/muebleria/internal/adapters/repo/postgres"
	"github.com/maderal/muebleria/internal/domain"
)

func TestCustomerUniqueness(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	uc := &CustomerUC{Customers: postgres.NewCustomerRepo(db)}

	base := domain.Customer{
		Name:            "Juan",
		Surname:         "Pérez",
		TelephoneNumber: "+34663890275",
		Email:           "juanillo@example.com",
		Address:         "Calle Principal",
		PostalCode:      12345,
		City:            "Ciudad Ejemplo",
		NIF:             "12345678C",
	}
	first := base
	require.NoError(t, uc.Create(ctx, &first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	t.Run("duplicate telephone", func(t *testing.T) {
		c := base
		c.NIF = "87654321D"
		c.Email = "otro@example.com"
		err := uc.Create(ctx, &c)
		require.Error(t, err)
		assert.EqualError(t, err, "Expected `telephoneNumber` to be unique")
	})

	t.Run("duplicate email", func(t *testing.T) {
		c := base
		c.NIF = "87654321D"
		c.TelephoneNumber = "+34663890299"
		err := uc.Create(ctx, &c)
		require.Error(t, err)
		assert.EqualError(t, err, "Expected `email` to be unique")
	})

	t.Run("duplicate nif", func(t *testing.T) {
		c := base
		c.TelephoneNumber = "+34663890299"
		c.Email = "otro@example.com"
		err := uc.Create(ctx, &c)
		require.Error(t, err)
		assert.EqualError(t, err, "Expected `nif` to be unique")
	})

	t.Run("two customers without email", func(t *testing.T) {
		a := base
		a.ID = uuid.Nil
		a.NIF = "11111111A"
		a.TelephoneNumber = "+34611111111"
		a.Email = ""
		require.NoError(t, uc.Create(ctx, &a))

		b := base
		b.ID = uuid.Nil
		b.NIF = "22222222B"
		b.TelephoneNumber = "+34622222222"
		b.Email = ""
		assert.NoError(t, uc.Create(ctx, &b))
	})

	t.Run("update keeps own identity out of the check", func(t *testing.T) {
		c, err := uc.GetByNIF(ctx, "12345678C")
		require.NoError(t, err)
		c.City = "Sevilla"
		assert.NoError(t, uc.Update(ctx, c))
	})

	t.Run("delete by nif returns the record", func(t *testing.T) {
		c, err := uc.DeleteByNIF(ctx, "12345678C")
		require.NoError(t, err)
		assert.Equal(t, first.ID, c.ID)

		_, err = uc.GetByNIF(ctx, "12345678C")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
