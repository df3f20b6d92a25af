package services

import (
	"context"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/metrics"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/rent"
	"github.com/k12345663/Shop-Mauli/internal/timeutil"
)

const collectorHistoryLimit = 100

type CollectionService struct {
	renters     RenterStore
	assignments AssignmentStore
	payments    PaymentStore
	cache       ReportCache
}

func NewCollectionService(renters RenterStore, assignments AssignmentStore, payments PaymentStore, cache ReportCache) *CollectionService {
	return &CollectionService{renters: renters, assignments: assignments, payments: payments, cache: cache}
}

// Collect records one direct payment for a single period. The expected
// amount is snapshotted from the renter's current active rent; a duplicate
// row for the same renter and period surfaces as a ConflictError from the
// store's uniqueness constraint.
func (s *CollectionService) Collect(ctx context.Context, req models.CollectPaymentRequest, collectorUserID string) (*models.RentPayment, error) {
	if req.RenterID <= 0 || req.Amount <= 0 {
		return nil, apperrors.Validation("invalid input parameters")
	}
	period, err := rent.ParseMonthQuery(req.PeriodMonth)
	if err != nil {
		return nil, apperrors.Validation("period_month must be a valid month")
	}

	renter, err := s.renters.Get(ctx, req.RenterID)
	if err != nil {
		return nil, err
	}

	views, err := s.assignments.ListViewsByRenter(ctx, renter.ID)
	if err != nil {
		return nil, err
	}
	expected := rent.MonthlyExpected(assignmentViews(views))
	if expected <= 0 {
		return nil, apperrors.Validation("this renter has no active rent required")
	}

	mode := req.PaymentMode
	if mode == "" {
		mode = "cash"
	}
	collectionDate := req.CollectionDate
	if collectionDate == "" {
		collectionDate = timeutil.Now().Format(timeutil.DateLayout)
	} else if _, err := timeutil.ParseInIST(timeutil.DateLayout, collectionDate); err != nil {
		return nil, apperrors.Validation("collection_date must be YYYY-MM-DD")
	}

	payment := &models.RentPayment{
		RenterID:        renter.ID,
		RenterCode:      renter.RenterCode,
		RenterName:      renter.Name,
		CollectorUserID: collectorUserID,
		PeriodMonth:     period.Label(),
		ExpectedAmount:  expected,
		ReceivedAmount:  req.Amount,
		Status:          string(rent.DeriveStatus(expected, req.Amount)),
		PaymentMode:     mode,
		Notes:           req.Notes,
		CollectionDate:  collectionDate,
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.cache.InvalidateMonthReports(ctx, payment.PeriodMonth)
	metrics.PaymentsRecorded.WithLabelValues("collect").Inc()

	return payment, nil
}

// History returns the collector's recent collections, newest first.
func (s *CollectionService) History(ctx context.Context, collectorUserID string) ([]*models.RentPayment, error) {
	if collectorUserID == "" {
		return nil, apperrors.Validation("collector identity is required")
	}
	return s.payments.ListByCollector(ctx, collectorUserID, collectorHistoryLimit)
}

// RecordDeposit updates the collected deposit on one assignment.
func (s *CollectionService) RecordDeposit(ctx context.Context, assignmentID int, req models.UpdateDepositRequest) error {
	if req.DepositAmount < 0 {
		return apperrors.Validation("deposit amount cannot be negative")
	}
	if req.DepositDate != "" {
		if _, err := timeutil.ParseInIST(timeutil.DateLayout, req.DepositDate); err != nil {
			return apperrors.Validation("deposit_date must be YYYY-MM-DD")
		}
	}
	return s.assignments.UpdateDeposit(ctx, assignmentID, req.DepositAmount, req.DepositDate, req.DepositRemarks)
}
