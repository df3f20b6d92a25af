package services

import (
	"context"
	"encoding/json"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/rent"
)

type ReportService struct {
	assignments AssignmentStore
	payments    PaymentStore
	cache       ReportCache
}

func NewReportService(assignments AssignmentStore, payments PaymentStore, cache ReportCache) *ReportService {
	return &ReportService{assignments: assignments, payments: payments, cache: cache}
}

// MonthlyStatuses reconciles every renter against the requested period and
// returns the severity-ranked list. The collector UI reads this before
// accepting a payment so an already-paid period is refused up front rather
// than failing on the uniqueness constraint after the fact.
func (s *ReportService) MonthlyStatuses(ctx context.Context, monthQuery string) ([]rent.RenterStatus, error) {
	if monthQuery == "" {
		return nil, apperrors.Validation("month is required")
	}
	period, err := rent.ParseMonthQuery(monthQuery)
	if err != nil {
		return nil, apperrors.Validation("month must be YYYY-MM or a period label like Feb-2026")
	}
	label := period.Label()

	if data, ok := s.cache.GetMonthReport(ctx, label); ok {
		var cached []rent.RenterStatus
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	views, err := s.assignments.ListViews(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.payments.ListByPeriod(ctx, label)
	if err != nil {
		return nil, err
	}
	payments := make([]rent.PeriodPayment, 0, len(rows))
	for _, p := range rows {
		payments = append(payments, rent.PeriodPayment{
			RenterID: p.RenterID,
			Received: p.ReceivedAmount,
		})
	}

	statuses := rent.Reconcile(assignmentViews(views), payments)

	if data, err := json.Marshal(statuses); err == nil {
		s.cache.SetMonthReport(ctx, label, data)
	}

	return statuses, nil
}

// Defaulters narrows the reconciliation to renters who still owe for the
// period: unpaid first, then partial, ranked by pending amount.
func (s *ReportService) Defaulters(ctx context.Context, monthQuery string) ([]rent.RenterStatus, error) {
	statuses, err := s.MonthlyStatuses(ctx, monthQuery)
	if err != nil {
		return nil, err
	}

	defaulters := make([]rent.RenterStatus, 0, len(statuses))
	for _, st := range statuses {
		if st.Status == rent.StatusUnpaid || st.Status == rent.StatusPartial {
			defaulters = append(defaulters, st)
		}
	}
	return defaulters, nil
}
