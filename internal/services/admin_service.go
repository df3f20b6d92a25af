package services

import (
	"context"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/rent"
	"github.com/k12345663/Shop-Mauli/internal/repositories"
	"github.com/k12345663/Shop-Mauli/internal/timeutil"
)

type ShopLister interface {
	List(ctx context.Context, activeOnly bool) ([]*models.Shop, error)
}

type RenterLister interface {
	List(ctx context.Context) ([]*models.Renter, error)
}

type ComplexLister interface {
	List(ctx context.Context) ([]*models.Complex, error)
}

type AdminService struct {
	shops       ShopLister
	renters     RenterLister
	complexes   ComplexLister
	assignments AssignmentStore
	payments    PaymentStore
	cache       ReportCache
}

func NewAdminService(shops ShopLister, renters RenterLister, complexes ComplexLister, assignments AssignmentStore, payments PaymentStore, cache ReportCache) *AdminService {
	return &AdminService{
		shops:       shops,
		renters:     renters,
		complexes:   complexes,
		assignments: assignments,
		payments:    payments,
		cache:       cache,
	}
}

// DashboardStats is the raw month snapshot the admin and owner dashboards
// render: the slices, not precomputed aggregates.
type DashboardStats struct {
	Shops       []*models.Shop          `json:"shops"`
	Renters     []*models.Renter        `json:"renters"`
	Payments    []*models.RentPayment   `json:"payments"`
	Complexes   []*models.Complex       `json:"complexes"`
	Assignments []models.AssignmentView `json:"assignments"`
}

func (s *AdminService) Stats(ctx context.Context, monthQuery string) (*DashboardStats, error) {
	period, err := rent.ParseMonthQuery(monthQuery)
	if err != nil {
		return nil, apperrors.Validation("month is required")
	}

	shops, err := s.shops.List(ctx, true)
	if err != nil {
		return nil, err
	}
	renters, err := s.renters.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByPeriod(ctx, period.Label())
	if err != nil {
		return nil, err
	}
	complexes, err := s.complexes.List(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListViews(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Shops:       shops,
		Renters:     renters,
		Payments:    payments,
		Complexes:   complexes,
		Assignments: assignments,
	}, nil
}

// LedgerFilter selects payment ledger rows by month, date range or day.
type LedgerFilter struct {
	Type         string // "month", "range" or "day"
	Month        string
	StartDate    string
	EndDate      string
	SpecificDate string
}

func (s *AdminService) Payments(ctx context.Context, f LedgerFilter) ([]*models.RentPayment, error) {
	var storeFilter repositories.PaymentFilter

	switch f.Type {
	case "", "month":
		if f.Month != "" {
			period, err := rent.ParseMonthQuery(f.Month)
			if err != nil {
				return nil, apperrors.Validation("month must be YYYY-MM or a period label")
			}
			storeFilter.PeriodMonth = period.Label()
		}
	case "range":
		storeFilter.StartDate = f.StartDate
		storeFilter.EndDate = f.EndDate
	case "day":
		if f.SpecificDate == "" {
			return nil, apperrors.Validation("specificDate is required for day filter")
		}
		storeFilter.SpecificDate = f.SpecificDate
	default:
		return nil, apperrors.Validation("type must be month, range or day")
	}

	return s.payments.ListFiltered(ctx, storeFilter)
}

// UpdatePayment corrects amount, mode, date or notes on an existing ledger
// row and re-derives its status from the corrected amounts. Rows are edited,
// never deleted.
func (s *AdminService) UpdatePayment(ctx context.Context, id int, req models.UpdatePaymentRequest) (*models.RentPayment, error) {
	payment, err := s.payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ReceivedAmount != nil {
		if *req.ReceivedAmount < 0 {
			return nil, apperrors.Validation("received amount cannot be negative")
		}
		payment.ReceivedAmount = *req.ReceivedAmount
	}
	if req.PaymentMode != nil {
		payment.PaymentMode = *req.PaymentMode
	}
	if req.CollectionDate != nil {
		if _, err := timeutil.ParseInIST(timeutil.DateLayout, *req.CollectionDate); err != nil {
			return nil, apperrors.Validation("collection_date must be YYYY-MM-DD")
		}
		payment.CollectionDate = *req.CollectionDate
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	payment.Status = string(rent.DeriveStatus(payment.ExpectedAmount, payment.ReceivedAmount))

	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.cache.InvalidateMonthReports(ctx, payment.PeriodMonth)

	return payment, nil
}
