package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/middleware"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/rent"
	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/internal/telegram"
	"github.com/k12345663/Shop-Mauli/pkg/utils"
)

type AdvanceHandler struct {
	Service  *services.AdvanceService
	Notifier telegram.Notifier
}

func NewAdvanceHandler(service *services.AdvanceService, notifier telegram.Notifier) *AdvanceHandler {
	return &AdvanceHandler{Service: service, Notifier: notifier}
}

// Distribute accepts a lump sum and spreads it forward across billing
// periods. Notification dispatch is fire-and-forget: a Telegram failure
// never fails the distribution.
func (h *AdvanceHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req models.AdvancePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	collectorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	result, err := h.Service.Distribute(r.Context(), req, collectorID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	for _, record := range result.RecordsCreated {
		go notifyPayment(h.Notifier, record, true)
	}

	utils.JSON(w, http.StatusOK, result)
}

func notifyPayment(notifier telegram.Notifier, p *models.RentPayment, advance bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := notifier.PaymentRecorded(ctx, telegram.PaymentNotification{
		RenterName:  p.RenterName,
		RenterCode:  p.RenterCode,
		PeriodMonth: p.PeriodMonth,
		Status:      rent.Status(p.Status),
		Expected:    p.ExpectedAmount,
		Received:    p.ReceivedAmount,
		PaymentMode: p.PaymentMode,
		Advance:     advance,
	})
	if err != nil {
		log.Printf("[Telegram] notify failed for %s %s: %v", p.RenterCode, p.PeriodMonth, err)
	}
}
