package httpserver

import (
	"net/http"

	"github.com/maderal/muebleria/internal/usecase"
)

type Server struct {
	mux          *http.ServeMux
	customers    *usecase.CustomerUC
	providers    *usecase.ProviderUC
	furnitures   *usecase.FurnitureUC
	transactions *usecase.TransactionUC
}

func New(c *usecase.CustomerUC, p *usecase.ProviderUC, f *usecase.FurnitureUC, t *usecase.TransactionUC) http.Handler {
	s := &Server{
		mux:          http.NewServeMux(),
		customers:    c,
		providers:    p,
		furnitures:   f,
		transactions: t,
	}
	s.routes()
	return Chain(s.mux,
		Recovery,
		RequestID,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/customers", s.handleCustomers)
	s.mux.HandleFunc("/customers/", s.handleCustomerByID)
	s.mux.HandleFunc("/providers", s.handleProviders)
	s.mux.HandleFunc("/providers/", s.handleProviderByID)
	s.mux.HandleFunc("/furnitures", s.handleFurnitures)
	s.mux.HandleFunc("/furnitures/", s.handleFurnitureByID)
	s.mux.HandleFunc("/transactions", s.handleTransactions)
	s.mux.HandleFunc("/transactions/", s.handleTransactionByID)

	// everything else is not implemented
	s.mux.HandleFunc("/", s.handleNotImplemented)
}

func (s *Server) handleNotImplemented(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}
