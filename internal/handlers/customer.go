package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/services"
)

type CustomerHandler struct {
	service services.CustomerService
}

func NewCustomerHandler(service services.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// @Summary Create a customer
// @Description Creates a customer with an optional initial list of holdings
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.CreateCustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {string} string "Bad request"
// @Router /customers [post]
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Param skip query int false "Offset (default 0)"
// @Param limit query int false "Page size (default 100)"
// @Success 200 {array} models.Customer
// @Failure 400 {string} string "Bad request"
// @Router /customers [get]
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skip, err := intParam(r, "skip", 0)
	if err != nil {
		http.Error(w, "skip must be an integer", http.StatusBadRequest)
		return
	}
	limit, err := intParam(r, "limit", services.DefaultListLimit)
	if err != nil {
		http.Error(w, "limit must be an integer", http.StatusBadRequest)
		return
	}

	customers, err := h.service.ListCustomers(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// @Summary Update a customer
// @Description Only the provided fields change; stocks, when present, replaces all holdings
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body models.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} models.Customer
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [put]
func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// @Summary Delete a customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
