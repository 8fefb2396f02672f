package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/maderal/muebleria/internal/domain"
)

// TransactionUC owns the resolve-then-write workflow: embedded payloads are
// resolved to stored identities, the composed record is validated and
// persisted, and references are expanded back for the response. Resolution
// and write are separate store calls; a failure anywhere before the write
// aborts with nothing persisted.
type TransactionUC struct {
	Transactions domain.TransactionRepo
	Furnitures   domain.FurnitureRepo
	Customers    domain.CustomerRepo
	Providers    domain.ProviderRepo
}

// ItemInput identifies furniture by name. The price the caller sends is
// ignored: the charged amount always comes from the stored records.
type ItemInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}

type ClientInput struct {
	NIF string `json:"nif"`
}

type CompanyInput struct {
	CIF string `json:"cif"`
}

type CreateTransactionInput struct {
	Items   []ItemInput   `json:"items"`
	Client  *ClientInput  `json:"client,omitempty"`
	Company *CompanyInput `json:"company,omitempty"`
}

// TransactionPatch applies whitelisted fields directly, bypassing both
// amount recomputation and the party invariant, as documented.
type TransactionPatch struct {
	Timestamp *time.Time   `json:"timestamp"`
	Amount    *float64     `json:"amount"`
	Client    *uuid.UUID   `json:"client"`
	Company   *uuid.UUID   `json:"company"`
	Items     []uuid.UUID  `json:"items"`
}

func (uc *TransactionUC) Create(ctx context.Context, in CreateTransactionInput) (*domain.TransactionView, error) {
	if len(in.Items) == 0 {
		return nil, &domain.ValidationError{Entity: "Transaction", Fields: []domain.FieldError{
			{Field: "items", Reason: "Path `items` is required."},
		}}
	}

	// Resolve items by name. Every stored record matching a requested name
	// joins the set; duplicates collapse on identity.
	seen := map[uuid.UUID]struct{}{}
	var resolved []domain.Furniture
	for _, it := range in.Items {
		founds, err := uc.Furnitures.FindAllByName(ctx, it.Name)
		if err != nil {
			return nil, err
		}
		if len(founds) == 0 {
			return nil, domain.NotFoundf("Furniture %s not found", it.Name)
		}
		for _, f := range founds {
			if _, ok := seen[f.ID]; ok {
				continue
			}
			seen[f.ID] = struct{}{}
			resolved = append(resolved, f)
		}
	}

	txn := &domain.Transaction{ID: uuid.New(), Timestamp: time.Now().UTC()}

	if in.Client != nil {
		customer, err := uc.Customers.FindByNIF(ctx, in.Client.NIF)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NotFoundf("Client not found")
			}
			return nil, err
		}
		txn.ClientID = &customer.ID
		txn.Client = customer
	}

	if in.Company != nil {
		provider, err := uc.Providers.FindByCIF(ctx, in.Company.CIF)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NotFoundf("Company not found")
			}
			return nil, err
		}
		txn.CompanyID = &provider.ID
		txn.Company = provider
	}

	if err := txn.ValidateParties(); err != nil {
		return nil, err
	}

	// Amount derives from the stored prices of the deduplicated set, never
	// from whatever the request body claimed.
	amount := decimal.Zero
	for _, f := range resolved {
		amount = amount.Add(decimal.NewFromFloat(f.Price))
	}
	txn.Amount = amount.InexactFloat64()
	txn.Items = resolved

	if err := uc.Transactions.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn.View(), nil
}

func (uc *TransactionUC) Get(ctx context.Context, id uuid.UUID) (*domain.TransactionView, error) {
	txn, err := uc.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return txn.View(), nil
}

func (uc *TransactionUC) List(ctx context.Context) ([]*domain.TransactionView, error) {
	txns, err := uc.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*domain.TransactionView, 0, len(txns))
	for i := range txns {
		views = append(views, txns[i].View())
	}
	return views, nil
}

func (uc *TransactionUC) Update(ctx context.Context, id uuid.UUID, patch TransactionPatch) (*domain.TransactionView, error) {
	txn, err := uc.Transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Transaction not found")
		}
		return nil, err
	}
	// Resolve the patched item ids before touching the record, so a bad id
	// fails the whole PATCH with nothing written.
	var items []domain.Furniture
	if patch.Items != nil {
		items = make([]domain.Furniture, 0, len(patch.Items))
		for _, itemID := range patch.Items {
			f, err := uc.Furnitures.FindByID(ctx, itemID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, domain.NotFoundf("Furniture %s not found", itemID)
				}
				return nil, err
			}
			items = append(items, *f)
		}
	}
	if patch.Timestamp != nil {
		txn.Timestamp = *patch.Timestamp
	}
	if patch.Amount != nil {
		txn.Amount = *patch.Amount
	}
	if patch.Client != nil {
		txn.ClientID = patch.Client
	}
	if patch.Company != nil {
		txn.CompanyID = patch.Company
	}
	if err := uc.Transactions.Update(ctx, txn); err != nil {
		return nil, err
	}
	if patch.Items != nil {
		if err := uc.Transactions.ReplaceItems(ctx, txn, items); err != nil {
			return nil, err
		}
	}
	updated, err := uc.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated.View(), nil
}

func (uc *TransactionUC) Delete(ctx context.Context, id uuid.UUID) (*domain.TransactionView, error) {
	txn, err := uc.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := txn.View()
	if err := uc.Transactions.Delete(ctx, txn); err != nil {
		return nil, err
	}
	return view, nil
}
