package app

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maderal/muebleria/internal/adapters/httpserver"
	"github.com/maderal/muebleria/internal/adapters/repo/postgres"
	"github.com/maderal/muebleria/internal/domain"
	"github.com/maderal/muebleria/internal/usecase"
)

type App struct {
	DB           *gorm.DB
	Customers    *usecase.CustomerUC
	Providers    *usecase.ProviderUC
	Furnitures   *usecase.FurnitureUC
	Transactions *usecase.TransactionUC
}

func NewApp(db *gorm.DB) (*App, error) {
	custRepo := postgres.NewCustomerRepo(db)
	provRepo := postgres.NewProviderRepo(db)
	furnRepo := postgres.NewFurnitureRepo(db)
	txnRepo := postgres.NewTransactionRepo(db)

	app := &App{DB: db}
	app.Customers = &usecase.CustomerUC{Customers: custRepo}
	app.Providers = &usecase.ProviderUC{Providers: provRepo}
	app.Furnitures = &usecase.FurnitureUC{Furnitures: furnRepo}
	app.Transactions = &usecase.TransactionUC{
		Transactions: txnRepo,
		Furnitures:   furnRepo,
		Customers:    custRepo,
		Providers:    provRepo,
	}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Customers, a.Providers, a.Furnitures, a.Transactions)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Customer{}, &domain.Provider{}, &domain.Furniture{}, &domain.Transaction{},
	); err != nil {
		return err
	}

	// email is optional: enforce uniqueness only for rows that carry one
	if err := a.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_unique ON customers (email) WHERE email IS NOT NULL AND email <> ''").Error; err != nil {
		log.Error().Err(err).Msg("customer email index")
	}

	if err := a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions (timestamp)").Error; err != nil {
		log.Error().Err(err).Msg("transaction timestamp index")
	}

	return nil
}
