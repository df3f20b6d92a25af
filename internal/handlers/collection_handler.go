package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/middleware"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/internal/telegram"
	"github.com/k12345663/Shop-Mauli/pkg/utils"
)

type CollectionHandler struct {
	Service  *services.CollectionService
	Notifier telegram.Notifier
}

func NewCollectionHandler(service *services.CollectionService, notifier telegram.Notifier) *CollectionHandler {
	return &CollectionHandler{Service: service, Notifier: notifier}
}

func (h *CollectionHandler) Collect(w http.ResponseWriter, r *http.Request) {
	var req models.CollectPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	collectorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	payment, err := h.Service.Collect(r.Context(), req, collectorID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	go notifyPayment(h.Notifier, payment, false)

	utils.JSON(w, http.StatusCreated, payment)
}

func (h *CollectionHandler) History(w http.ResponseWriter, r *http.Request) {
	collectorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	payments, err := h.Service.History(r.Context(), collectorID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, payments)
}

func (h *CollectionHandler) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assignmentID, err := strconv.Atoi(vars["assignment_id"])
	if err != nil {
		utils.Error(w, apperrors.Validation("invalid assignment ID"))
		return
	}

	var req models.UpdateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	if err := h.Service.RecordDeposit(r.Context(), assignmentID, req); err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
