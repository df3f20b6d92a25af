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

func newReportFixture() (*services.ReportService, *fakePaymentStore, *fakeCache) {
	assignments := &fakeAssignmentStore{views: []models.AssignmentView{
		{AssignmentID: 1, RenterID: 1, RenterCode: "R-001", RenterName: "Suresh Pawar", ShopID: 1, ShopActive: true, RentAmount: 5000},
		{AssignmentID: 2, RenterID: 2, RenterCode: "R-002", RenterName: "Meena Joshi", ShopID: 2, ShopActive: true, RentAmount: 3000},
		{AssignmentID: 3, RenterID: 3, RenterCode: "R-003", RenterName: "Anil Kale", ShopID: 3, ShopActive: true, RentAmount: 4000},
	}}
	payments := &fakePaymentStore{payments: []*models.RentPayment{
		{ID: 1, RenterID: 1, PeriodMonth: "Feb-2026", ReceivedAmount: 5000},
		{ID: 2, RenterID: 2, PeriodMonth: "Feb-2026", ReceivedAmount: 1000},
	}}
	cache := newFakeCache()
	return services.NewReportService(assignments, payments, cache), payments, cache
}

func TestMonthlyStatusesRequiresMonth(t *testing.T) {
	svc, _, _ := newReportFixture()

	_, err := svc.MonthlyStatuses(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = svc.MonthlyStatuses(context.Background(), "sometime soon")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestMonthlyStatusesRanksBySeverity(t *testing.T) {
	// GIVEN three renters: one paid, one partial, one with nothing collected
	svc, _, _ := newReportFixture()

	// WHEN the month is reconciled (both query formats resolve to Feb-2026)
	statuses, err := svc.MonthlyStatuses(context.Background(), "2026-02")
	require.NoError(t, err)

	// THEN unpaid sorts first, then partial, then paid
	require.Len(t, statuses, 3)
	assert.Equal(t, "R-003", statuses[0].RenterCode)
	assert.Equal(t, rent.StatusUnpaid, statuses[0].Status)
	assert.Equal(t, 4000.0, statuses[0].Pending)

	assert.Equal(t, "R-002", statuses[1].RenterCode)
	assert.Equal(t, rent.StatusPartial, statuses[1].Status)
	assert.Equal(t, 2000.0, statuses[1].Pending)

	assert.Equal(t, "R-001", statuses[2].RenterCode)
	assert.Equal(t, rent.StatusPaid, statuses[2].Status)
	assert.Equal(t, 0.0, statuses[2].Pending)
}

func TestMonthlyStatusesCachesResult(t *testing.T) {
	svc, payments, cache := newReportFixture()

	first, err := svc.MonthlyStatuses(context.Background(), "Feb-2026")
	require.NoError(t, err)
	require.Contains(t, cache.entries, "Feb-2026")

	// A later write would normally invalidate; without it the cached report
	// is served even though the store changed underneath.
	payments.payments = append(payments.payments, &models.RentPayment{
		ID: 3, RenterID: 3, PeriodMonth: "Feb-2026", ReceivedAmount: 4000,
	})
	second, err := svc.MonthlyStatuses(context.Background(), "Feb-2026")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.hits)
}

func TestMonthlyStatusesIdempotentWithoutWrites(t *testing.T) {
	svc, _, _ := newReportFixture()

	first, err := svc.MonthlyStatuses(context.Background(), "Feb-2026")
	require.NoError(t, err)
	second, err := svc.MonthlyStatuses(context.Background(), "Feb-2026")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDefaultersExcludesSettledRenters(t *testing.T) {
	svc, _, _ := newReportFixture()

	defaulters, err := svc.Defaulters(context.Background(), "2026-02")
	require.NoError(t, err)

	require.Len(t, defaulters, 2)
	assert.Equal(t, rent.StatusUnpaid, defaulters[0].Status)
	assert.Equal(t, rent.StatusPartial, defaulters[1].Status)
	for _, d := range defaulters {
		assert.NotEqual(t, rent.StatusPaid, d.Status)
		assert.NotEqual(t, rent.StatusNoRentDue, d.Status)
	}
}
