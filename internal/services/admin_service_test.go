package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/rent"
	"github.com/k12345663/Shop-Mauli/internal/services"
)

type fakeShopLister struct{ shops []*models.Shop }

func (f *fakeShopLister) List(_ context.Context, activeOnly bool) ([]*models.Shop, error) {
	if !activeOnly {
		return f.shops, nil
	}
	var out []*models.Shop
	for _, s := range f.shops {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeRenterLister struct{ renters []*models.Renter }

func (f *fakeRenterLister) List(_ context.Context) ([]*models.Renter, error) {
	return f.renters, nil
}

type fakeComplexLister struct{ complexes []*models.Complex }

func (f *fakeComplexLister) List(_ context.Context) ([]*models.Complex, error) {
	return f.complexes, nil
}

func newAdminFixture() (*services.AdminService, *fakePaymentStore, *fakeCache) {
	shops := &fakeShopLister{shops: []*models.Shop{
		{ID: 1, ShopNo: "A-1", RentAmount: 5000, IsActive: true},
		{ID: 2, ShopNo: "A-2", RentAmount: 3000, IsActive: false},
	}}
	renters := &fakeRenterLister{renters: []*models.Renter{
		{ID: 1, RenterCode: "R-001", Name: "Suresh Pawar"},
	}}
	complexes := &fakeComplexLister{complexes: []*models.Complex{
		{ID: 1, Name: "Mauli Complex"},
	}}
	assignments := &fakeAssignmentStore{views: []models.AssignmentView{
		{AssignmentID: 1, RenterID: 1, RenterCode: "R-001", ShopID: 1, ShopActive: true, RentAmount: 5000},
	}}
	payments := &fakePaymentStore{payments: []*models.RentPayment{
		{ID: 1, RenterID: 1, PeriodMonth: "Feb-2026", ExpectedAmount: 5000, ReceivedAmount: 2000, Status: string(rent.StatusPartial), CollectionDate: "2026-02-05"},
		{ID: 2, RenterID: 1, PeriodMonth: "Jan-2026", ExpectedAmount: 5000, ReceivedAmount: 5000, Status: string(rent.StatusPaid), CollectionDate: "2026-01-03"},
	}}
	cache := newFakeCache()
	return services.NewAdminService(shops, renters, complexes, assignments, payments, cache), payments, cache
}

func TestStatsReturnsMonthSnapshot(t *testing.T) {
	svc, _, _ := newAdminFixture()

	stats, err := svc.Stats(context.Background(), "2026-02")
	require.NoError(t, err)

	// only the active shop and the requested month's payments
	require.Len(t, stats.Shops, 1)
	assert.Equal(t, "A-1", stats.Shops[0].ShopNo)
	require.Len(t, stats.Payments, 1)
	assert.Equal(t, "Feb-2026", stats.Payments[0].PeriodMonth)
	assert.Len(t, stats.Renters, 1)
	assert.Len(t, stats.Complexes, 1)
	assert.Len(t, stats.Assignments, 1)

	_, err = svc.Stats(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestPaymentsLedgerFilters(t *testing.T) {
	svc, _, _ := newAdminFixture()

	t.Run("by month", func(t *testing.T) {
		rows, err := svc.Payments(context.Background(), services.LedgerFilter{Type: "month", Month: "2026-01"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Jan-2026", rows[0].PeriodMonth)
	})

	t.Run("by range", func(t *testing.T) {
		rows, err := svc.Payments(context.Background(), services.LedgerFilter{
			Type: "range", StartDate: "2026-01-01", EndDate: "2026-01-31",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].ID)
	})

	t.Run("by day", func(t *testing.T) {
		rows, err := svc.Payments(context.Background(), services.LedgerFilter{Type: "day", SpecificDate: "2026-02-05"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 1, rows[0].ID)
	})

	t.Run("day needs a date", func(t *testing.T) {
		_, err := svc.Payments(context.Background(), services.LedgerFilter{Type: "day"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := svc.Payments(context.Background(), services.LedgerFilter{Type: "week"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}

func TestUpdatePaymentRederivesStatus(t *testing.T) {
	svc, payments, cache := newAdminFixture()

	amount := 5000.0
	mode := "upi"
	got, err := svc.UpdatePayment(context.Background(), 1, models.UpdatePaymentRequest{
		ReceivedAmount: &amount,
		PaymentMode:    &mode,
	})
	require.NoError(t, err)

	// correcting the amount to the full rent flips partial to paid
	assert.Equal(t, 5000.0, got.ReceivedAmount)
	assert.Equal(t, string(rent.StatusPaid), got.Status)
	assert.Equal(t, "upi", got.PaymentMode)

	stored, err := payments.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(rent.StatusPaid), stored.Status)
	assert.Contains(t, cache.invalidated, "Feb-2026")
}

func TestUpdatePaymentValidation(t *testing.T) {
	svc, _, _ := newAdminFixture()

	negative := -10.0
	_, err := svc.UpdatePayment(context.Background(), 1, models.UpdatePaymentRequest{ReceivedAmount: &negative})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	badDate := "05-02-2026"
	_, err = svc.UpdatePayment(context.Background(), 1, models.UpdatePaymentRequest{CollectionDate: &badDate})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	amount := 100.0
	_, err = svc.UpdatePayment(context.Background(), 99, models.UpdatePaymentRequest{ReceivedAmount: &amount})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
