package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maderal/muebleria/internal/domain"
)

type TransactionRepo struct{ db *gorm.DB }

func NewTransactionRepo(db *gorm.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// Create persists the record and its join rows in one store call. Item
// furniture rows already exist, so only the associations are written.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Omit("Items.*").Create(t).Error
}

func (r *TransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Client").Preload("Company").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &t, nil
}

func (r *TransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	var list []domain.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Client").Preload("Company").
		Order("timestamp asc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update writes scalar fields only; item references go through ReplaceItems.
func (r *TransactionRepo) Update(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Omit("Items", "Client", "Company").Save(t).Error
}

func (r *TransactionRepo) ReplaceItems(ctx context.Context, t *domain.Transaction, items []domain.Furniture) error {
	return r.db.WithContext(ctx).Model(t).Omit("Items.*").Association("Items").Replace(items)
}

func (r *TransactionRepo) Delete(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(t).Association("Items").Clear(); err != nil {
			return err
		}
		return tx.Delete(&domain.Transaction{}, "id = ?", t.ID).Error
	})
}
