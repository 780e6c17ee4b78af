package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups the REST handlers mounted by RegisterRoutes.
type Handlers struct {
	Stocks    *StockHandler
	Portfolio *PortfolioHandler
	Customers *CustomerHandler
	Health    *HealthHandler
}

// RegisterRoutes mounts the API under /api/v1 and the system endpoints at the root.
func RegisterRoutes(r *mux.Router, h *Handlers) {
	r.HandleFunc("/", h.Health.HandleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.HandleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.Health.HandleHealth).Methods(http.MethodGet)

	api.HandleFunc("/stocks/populate-fortune500", h.Stocks.HandlePopulateDefault).Methods(http.MethodPost)
	api.HandleFunc("/stocks/populate", h.Stocks.HandlePopulateBatch).Methods(http.MethodPost)
	api.HandleFunc("/stocks/populate/{ticker}", h.Stocks.HandlePopulate).Methods(http.MethodPost)
	api.HandleFunc("/stocks/{ticker}", h.Stocks.HandleGetStock).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{ticker}/prices", h.Stocks.HandlePrices).Methods(http.MethodGet)

	api.HandleFunc("/portfolio/{customer_id}/returns", h.Portfolio.HandleReturns).Methods(http.MethodGet)

	api.HandleFunc("/customers", h.Customers.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/customers", h.Customers.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customers.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customers.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", h.Customers.HandleDelete).Methods(http.MethodDelete)
}

// RegisterSwagger serves the generated API docs at /swagger/.
func RegisterSwagger(r *mux.Router) {
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}
