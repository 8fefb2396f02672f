package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maderal/muebleria/internal/adapters/repo/postgres"
	"github.com/maderal/muebleria/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Customer{}, &domain.Provider{}, &domain.Furniture{}, &domain.Transaction{},
	))
	return db
}

func newTransactionUC(t *testing.T) (*TransactionUC, *gorm.DB) {
	db := newTestDB(t)
	return &TransactionUC{
		Transactions: postgres.NewTransactionRepo(db),
		Furnitures:   postgres.NewFurnitureRepo(db),
		Customers:    postgres.NewCustomerRepo(db),
		Providers:    postgres.NewProviderRepo(db),
	}, db
}

func seedFurniture(t *testing.T, db *gorm.DB, name string, price float64) domain.Furniture {
	t.Helper()
	f := domain.Furniture{
		ID:          uuid.New(),
		Name:        name,
		Description: "pieza de catálogo",
		Dimensions:  "100x50x40",
		Color:       "Marron",
		Price:       price,
		Quantity:    3,
	}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func seedCustomer(t *testing.T, db *gorm.DB, nif string) domain.Customer {
	t.Helper()
	c := domain.Customer{
		ID:              uuid.New(),
		Name:            "Juan",
		Surname:         "Pérez",
		TelephoneNumber: "+34663890275",
		Address:         "Calle Principal",
		PostalCode:      12345,
		City:            "Ciudad Ejemplo",
		NIF:             nif,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProvider(t *testing.T, db *gorm.DB, cif string) domain.Provider {
	t.Helper()
	p := domain.Provider{
		ID:              uuid.New(),
		Name:            "maderas del norte",
		Address:         "poligono industrial 4",
		TelephoneNumber: "+34663890276",
		Email:           "ventas@maderas.example.com",
		CIF:             cif,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestTransactionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("amount comes from stored prices", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		seedFurniture(t, db, "Mesa", 120.50)
		customer := seedCustomer(t, db, "12345678C")

		view, err := uc.Create(ctx, CreateTransactionInput{
			Items: []ItemInput{
				{Name: "Silla", Price: 1},
				{Name: "Mesa", Price: 1},
			},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)
		assert.InDelta(t, 140.49, view.Amount, 1e-9)
		require.NotNil(t, view.Client)
		assert.Equal(t, customer.ID, view.Client.ID)
		assert.Nil(t, view.Company)
		assert.Len(t, view.Items, 2)
	})

	t.Run("repeated item names collapse", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		seedCustomer(t, db, "12345678C")

		view, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}, {Name: "Silla"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.InDelta(t, 19.99, view.Amount, 1e-9)
	})

	t.Run("company party resolves by cif", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		provider := seedProvider(t, db, "A12345678")

		view, err := uc.Create(ctx, CreateTransactionInput{
			Items:   []ItemInput{{Name: "Silla"}},
			Company: &CompanyInput{CIF: "A12345678"},
		})
		require.NoError(t, err)
		require.NotNil(t, view.Company)
		assert.Equal(t, provider.ID, view.Company.ID)
		assert.Nil(t, view.Client)
	})

	t.Run("no items", func(t *testing.T) {
		uc, _ := newTransactionUC(t)
		_, err := uc.Create(ctx, CreateTransactionInput{Client: &ClientInput{NIF: "12345678C"}})
		require.Error(t, err)
		assert.EqualError(t, err, "Transaction validation failed: items: Path `items` is required.")
	})

	t.Run("unknown furniture", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedCustomer(t, db, "12345678C")
		_, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Trono"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.EqualError(t, err, "Furniture Trono not found")
	})

	t.Run("unknown client", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		_, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}},
			Client: &ClientInput{NIF: "99999999Z"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.EqualError(t, err, "Client not found")
	})

	t.Run("unknown company", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		_, err := uc.Create(ctx, CreateTransactionInput{
			Items:   []ItemInput{{Name: "Silla"}},
			Company: &CompanyInput{CIF: "Z99999999"},
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Company not found")
	})

	t.Run("both parties rejected", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		seedCustomer(t, db, "12345678C")
		seedProvider(t, db, "A12345678")
		_, err := uc.Create(ctx, CreateTransactionInput{
			Items:   []ItemInput{{Name: "Silla"}},
			Client:  &ClientInput{NIF: "12345678C"},
			Company: &CompanyInput{CIF: "A12345678"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no ambos")
	})

	t.Run("no party rejected", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		_, err := uc.Create(ctx, CreateTransactionInput{Items: []ItemInput{{Name: "Silla"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Debes definir un cliente o una compañía")
	})
}

func TestTransactionUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("patch scalar fields", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		seedCustomer(t, db, "12345678C")
		created, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)

		when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		amount := 999.0
		updated, err := uc.Update(ctx, created.ID, TransactionPatch{Timestamp: &when, Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, 999.0, updated.Amount)
		assert.True(t, updated.Timestamp.Equal(when))
		assert.Len(t, updated.Items, 1)
	})

	t.Run("patch items replaces the set", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		mesa := seedFurniture(t, db, "Mesa", 120.50)
		seedCustomer(t, db, "12345678C")
		created, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)

		updated, err := uc.Update(ctx, created.ID, TransactionPatch{Items: []uuid.UUID{mesa.ID}})
		require.NoError(t, err)
		require.Len(t, updated.Items, 1)
		assert.Equal(t, mesa.ID, updated.Items[0].ID)
	})

	t.Run("unknown item id leaves the record untouched", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		seedCustomer(t, db, "12345678C")
		created, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)

		amount := 999.0
		_, err = uc.Update(ctx, created.ID, TransactionPatch{
			Amount: &amount,
			Items:  []uuid.UUID{uuid.New()},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		after, err := uc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.InDelta(t, 19.99, after.Amount, 1e-9)
		require.Len(t, after.Items, 1)
	})

	t.Run("patch client and company raw uuids", func(t *testing.T) {
		uc, db := newTransactionUC(t)
		seedFurniture(t, db, "Silla", 19.99)
		seedCustomer(t, db, "12345678C")
		created, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)

		// references are written as-is: no existence check, no
		// client-XOR-company enforcement on the direct patch path
		client := uuid.New()
		company := uuid.New()
		_, err = uc.Update(ctx, created.ID, TransactionPatch{Client: &client, Company: &company})
		require.NoError(t, err)

		var stored domain.Transaction
		require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
		require.NotNil(t, stored.ClientID)
		require.NotNil(t, stored.CompanyID)
		assert.Equal(t, client, *stored.ClientID)
		assert.Equal(t, company, *stored.CompanyID)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		uc, _ := newTransactionUC(t)
		_, err := uc.Update(ctx, uuid.New(), TransactionPatch{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.EqualError(t, err, "Transaction not found")
	})
}

func TestTransactionDelete(t *testing.T) {
	ctx := context.Background()
	uc, db := newTransactionUC(t)
	seedFurniture(t, db, "Silla", 19.99)
	seedCustomer(t, db, "12345678C")
	created, err := uc.Create(ctx, CreateTransactionInput{
		Items:  []ItemInput{{Name: "Silla"}},
		Client: &ClientInput{NIF: "12345678C"},
	})
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// the join rows go with the record, the catalog stays
	var count int64
	require.NoError(t, db.Table("transaction_items").Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.Furniture{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTransactionList(t *testing.T) {
	ctx := context.Background()
	uc, db := newTransactionUC(t)
	seedFurniture(t, db, "Silla", 19.99)
	seedCustomer(t, db, "12345678C")

	views, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, CreateTransactionInput{
			Items:  []ItemInput{{Name: "Silla"}},
			Client: &ClientInput{NIF: "12345678C"},
		})
		require.NoError(t, err)
	}
	views, err = uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for i := 1; i < len(views); i++ {
		assert.False(t, views[i].Timestamp.Before(views[i-1].Timestamp))
	}
}
