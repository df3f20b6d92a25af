package services_test

import (
	"context"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/repositories"
)

// In-memory fakes for the store interfaces the services depend on.

type fakeRenterStore struct {
	renters map[int]*models.Renter
}

func (f *fakeRenterStore) Get(_ context.Context, id int) (*models.Renter, error) {
	r, ok := f.renters[id]
	if !ok {
		return nil, apperrors.NotFound("renter not found")
	}
	return r, nil
}

type fakeAssignmentStore struct {
	views []models.AssignmentView
}

func (f *fakeAssignmentStore) ListViews(_ context.Context) ([]models.AssignmentView, error) {
	return f.views, nil
}

func (f *fakeAssignmentStore) ListViewsByRenter(_ context.Context, renterID int) ([]models.AssignmentView, error) {
	var out []models.AssignmentView
	for _, v := range f.views {
		if v.RenterID == renterID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeAssignmentStore) UpdateDeposit(_ context.Context, id int, amount float64, date string, remarks string) error {
	return nil
}

type fakePaymentStore struct {
	payments []*models.RentPayment
	nextID   int

	createErr error
	batchErr  error
}

func (f *fakePaymentStore) Create(_ context.Context, p *models.RentPayment) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.payments {
		if existing.RenterID == p.RenterID && existing.PeriodMonth == p.PeriodMonth {
			return apperrors.Conflict("payment for " + p.PeriodMonth + " already exists for this renter")
		}
	}
	f.nextID++
	p.ID = f.nextID
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentStore) CreateBatch(ctx context.Context, ps []*models.RentPayment) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	// All or nothing, like the transactional repository.
	before := len(f.payments)
	for _, p := range ps {
		if err := f.Create(ctx, p); err != nil {
			f.payments = f.payments[:before]
			return err
		}
	}
	return nil
}

func (f *fakePaymentStore) Get(_ context.Context, id int) (*models.RentPayment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("payment not found")
}

func (f *fakePaymentStore) Update(_ context.Context, payment *models.RentPayment) error {
	for i, p := range f.payments {
		if p.ID == payment.ID {
			f.payments[i] = payment
			return nil
		}
	}
	return apperrors.NotFound("payment not found")
}

func (f *fakePaymentStore) ListByRenter(_ context.Context, renterID int) ([]*models.RentPayment, error) {
	var out []*models.RentPayment
	for _, p := range f.payments {
		if p.RenterID == renterID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) ListByPeriod(_ context.Context, periodMonth string) ([]*models.RentPayment, error) {
	var out []*models.RentPayment
	for _, p := range f.payments {
		if p.PeriodMonth == periodMonth {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) ListByCollector(_ context.Context, collectorUserID string, limit int) ([]*models.RentPayment, error) {
	var out []*models.RentPayment
	for _, p := range f.payments {
		if p.CollectorUserID == collectorUserID {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePaymentStore) ListFiltered(_ context.Context, filter repositories.PaymentFilter) ([]*models.RentPayment, error) {
	var out []*models.RentPayment
	for _, p := range f.payments {
		if filter.PeriodMonth != "" && p.PeriodMonth != filter.PeriodMonth {
			continue
		}
		if filter.SpecificDate != "" && p.CollectionDate != filter.SpecificDate {
			continue
		}
		if filter.StartDate != "" && p.CollectionDate < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && p.CollectionDate > filter.EndDate {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// fakeCache records cache traffic so tests can assert reads, writes and
// invalidations without a Redis instance.
type fakeCache struct {
	entries     map[string][]byte
	invalidated []string
	hits        int
	misses      int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetMonthReport(_ context.Context, periodMonth string) ([]byte, bool) {
	data, ok := f.entries[periodMonth]
	if ok {
		f.hits++
	} else {
		f.misses++
	}
	return data, ok
}

func (f *fakeCache) SetMonthReport(_ context.Context, periodMonth string, data []byte) {
	f.entries[periodMonth] = data
}

func (f *fakeCache) InvalidateMonthReports(_ context.Context, periodMonths ...string) {
	for _, pm := range periodMonths {
		delete(f.entries, pm)
		f.invalidated = append(f.invalidated, pm)
	}
}
