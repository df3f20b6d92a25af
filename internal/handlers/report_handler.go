package handlers

import (
	"net/http"

	"github.com/k12345663/Shop-Mauli/internal/services"
	"github.com/k12345663/Shop-Mauli/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// Search returns every renter's payment status for the requested month,
// severity-ranked, with deposit summaries attached. The collector UI uses
// it both for the defaulter report and to refuse collection against a
// period that is already fully paid.
func (h *ReportHandler) Search(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Service.MonthlyStatuses(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, statuses)
}

// Defaulters returns only the renters who still owe for the month.
func (h *ReportHandler) Defaulters(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Service.Defaulters(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, statuses)
}
