package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Transaction links a sale (client set) or a purchase (company set) to the
// furniture involved. References are non-owning: deleting a customer,
// provider or furniture never cascades into past transactions.
type Transaction struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp time.Time   `json:"timestamp"`
	Amount    float64     `json:"amount" gorm:"type:decimal(12,2)"`
	ClientID  *uuid.UUID  `json:"-" gorm:"type:uuid;index"`
	Client    *Customer   `json:"-"`
	CompanyID *uuid.UUID  `json:"-" gorm:"type:uuid;index"`
	Company   *Provider   `json:"-"`
	Items     []Furniture `json:"-" gorm:"many2many:transaction_items"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
}

// ValidateParties enforces the client-XOR-company rule. It runs before every
// create; direct PATCHes bypass it on purpose, like the old API did.
func (t *Transaction) ValidateParties() error {
	if t.ClientID == nil && t.CompanyID == nil {
		return &ValidationError{Entity: "Transaction", Fields: []FieldError{
			{Field: "client", Reason: "Debes definir un cliente o una compañía"},
		}}
	}
	if t.ClientID != nil && t.CompanyID != nil {
		return &ValidationError{Entity: "Transaction", Fields: []FieldError{
			{Field: "client", Reason: "Solo puedes definir un cliente o una compañía, no ambos"},
		}}
	}
	return nil
}

var TransactionUpdatableFields = []string{
	"timestamp", "amount", "client", "company", "items",
}

// EntityRef is the partial view a stored reference expands to on reads.
type EntityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TransactionView is the wire shape of a transaction with its references
// expanded. Expansion is a read-time join, nothing here is persisted.
type TransactionView struct {
	ID        uuid.UUID   `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Amount    float64     `json:"amount"`
	Client    *EntityRef  `json:"client,omitempty"`
	Company   *EntityRef  `json:"company,omitempty"`
	Items     []EntityRef `json:"items"`
}

// View expands the transaction's loaded references into partial summaries.
func (t *Transaction) View() *TransactionView {
	v := &TransactionView{ID: t.ID, Timestamp: t.Timestamp, Amount: t.Amount, Items: []EntityRef{}}
	if t.Client != nil {
		v.Client = &EntityRef{ID: t.Client.ID, Name: t.Client.Name}
	}
	if t.Company != nil {
		v.Company = &EntityRef{ID: t.Company.ID, Name: t.Company.Name}
	}
	for _, it := range t.Items {
		v.Items = append(v.Items, EntityRef{ID: it.ID, Name: it.Name})
	}
	return v
}

type TransactionRepo interface {
	Create(ctx context.Context, t *Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
	Update(ctx context.Context, t *Transaction) error
	ReplaceItems(ctx context.Context, t *Transaction, items []Furniture) error
	Delete(ctx context.Context, t *Transaction) error
}
