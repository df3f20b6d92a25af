package services

import (
	"context"
	"strings"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/metrics"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/rent"
	"github.com/k12345663/Shop-Mauli/internal/timeutil"
)

// advanceNoteTag marks rows that originated from a lump-sum distribution.
const advanceNoteTag = "(Advance Distribution)"

type AdvanceService struct {
	renters     RenterStore
	assignments AssignmentStore
	payments    PaymentStore
	cache       ReportCache
}

func NewAdvanceService(renters RenterStore, assignments AssignmentStore, payments PaymentStore, cache ReportCache) *AdvanceService {
	return &AdvanceService{renters: renters, assignments: assignments, payments: payments, cache: cache}
}

// DistributionResult is the caller-facing outcome of one advance run.
type DistributionResult struct {
	Success        bool                  `json:"success"`
	MonthsAffected int                   `json:"months_affected"`
	RecordsCreated []*models.RentPayment `json:"records_created"`
}

// Distribute converts one lump-sum receipt into per-period payment rows,
// walking forward from the current month and skipping fully-paid periods.
// All rows persist atomically; a concurrent write for any touched period
// rolls the whole run back with a ConflictError.
func (s *AdvanceService) Distribute(ctx context.Context, req models.AdvancePaymentRequest, collectorUserID string) (*DistributionResult, error) {
	if req.RenterID <= 0 || req.LumpSum <= 0 {
		return nil, apperrors.Validation("invalid input parameters")
	}

	renter, err := s.renters.Get(ctx, req.RenterID)
	if err != nil {
		return nil, err
	}

	views, err := s.assignments.ListViewsByRenter(ctx, renter.ID)
	if err != nil {
		return nil, err
	}

	// Frozen for the whole distribution: rent changes mid-run do not
	// re-derive per-month expectations (stale snapshot wins).
	monthlyExpected := rent.MonthlyExpected(assignmentViews(views))
	if monthlyExpected <= 0 {
		return nil, apperrors.Validation("this renter has no active rent required")
	}

	existing, err := s.payments.ListByRenter(ctx, renter.ID)
	if err != nil {
		return nil, err
	}
	collected := make(map[string]float64, len(existing))
	for _, p := range existing {
		collected[p.PeriodMonth] += p.ReceivedAmount
	}

	plan := rent.PlanDistribution(rent.DistributionInput{
		MonthlyExpected:   monthlyExpected,
		LumpSum:           req.LumpSum,
		Start:             rent.CurrentPeriod(),
		CollectedByPeriod: collected,
	})

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
	notes := strings.TrimSpace(advanceNoteTag + " " + req.Notes)

	records := make([]*models.RentPayment, 0, len(plan))
	for _, inst := range plan {
		records = append(records, &models.RentPayment{
			RenterID:        renter.ID,
			RenterCode:      renter.RenterCode,
			RenterName:      renter.Name,
			CollectorUserID: collectorUserID,
			PeriodMonth:     inst.Period.Label(),
			ExpectedAmount:  inst.Expected,
			ReceivedAmount:  inst.Amount,
			Status:          string(inst.Status),
			PaymentMode:     mode,
			Notes:           notes,
			CollectionDate:  collectionDate,
		})
	}

	if len(records) > 0 {
		if err := s.payments.CreateBatch(ctx, records); err != nil {
			return nil, err
		}

		periods := make([]string, len(records))
		for i, r := range records {
			periods[i] = r.PeriodMonth
		}
		s.cache.InvalidateMonthReports(ctx, periods...)

		metrics.PaymentsRecorded.WithLabelValues("advance").Add(float64(len(records)))
	}

	metrics.AdvanceDistributions.Inc()
	metrics.AdvanceMonthsAffected.Observe(float64(len(records)))

	return &DistributionResult{
		Success:        true,
		MonthsAffected: len(records),
		RecordsCreated: records,
	}, nil
}
