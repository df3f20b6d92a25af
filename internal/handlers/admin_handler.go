package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/internal/telegram"
	"github.com/k12345663/Shop-Mauli/pkg/utils"
)

type AdminHandler struct {
	Service  *services.AdminService
	Notifier telegram.Notifier
}

func NewAdminHandler(service *services.AdminService, notifier telegram.Notifier) *AdminHandler {
	return &AdminHandler{Service: service, Notifier: notifier}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) Payments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.LedgerFilter{
		Type:         q.Get("type"),
		Month:        q.Get("month"),
		StartDate:    q.Get("startDate"),
		EndDate:      q.Get("endDate"),
		SpecificDate: q.Get("specificDate"),
	}

	payments, err := h.Service.Payments(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, payments)
}

// UpdatePayment applies amount/mode/date corrections to a ledger row.
func (h *AdminHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid payment ID"))
		return
	}

	var req models.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	payment, err := h.Service.UpdatePayment(r.Context(), id, req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	go notifyPayment(h.Notifier, payment, false)

	utils.JSON(w, http.StatusOK, payment)
}
