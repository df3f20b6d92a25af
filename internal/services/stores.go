package services

import (
	"context"

	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/rent"
	"github.com/k12345663/Shop-Mauli/internal/repositories"
)

// The core components receive explicit store interfaces instead of reaching
// for shared clients; the pgx repositories satisfy them in production and
// in-memory fakes satisfy them in tests.

type RenterStore interface {
	Get(ctx context.Context, id int) (*models.Renter, error)
}

type AssignmentStore interface {
	ListViews(ctx context.Context) ([]models.AssignmentView, error)
	ListViewsByRenter(ctx context.Context, renterID int) ([]models.AssignmentView, error)
	UpdateDeposit(ctx context.Context, id int, amount float64, date string, remarks string) error
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.RentPayment) error
	CreateBatch(ctx context.Context, payments []*models.RentPayment) error
	Get(ctx context.Context, id int) (*models.RentPayment, error)
	Update(ctx context.Context, payment *models.RentPayment) error
	ListByRenter(ctx context.Context, renterID int) ([]*models.RentPayment, error)
	ListByPeriod(ctx context.Context, periodMonth string) ([]*models.RentPayment, error)
	ListByCollector(ctx context.Context, collectorUserID string, limit int) ([]*models.RentPayment, error)
	ListFiltered(ctx context.Context, f repositories.PaymentFilter) ([]*models.RentPayment, error)
}

// ReportCache is the month-report cache surface; the Redis cache implements
// it and a nil-safe no-op stands in when Redis is absent.
type ReportCache interface {
	GetMonthReport(ctx context.Context, periodMonth string) ([]byte, bool)
	SetMonthReport(ctx context.Context, periodMonth string, data []byte)
	InvalidateMonthReports(ctx context.Context, periodMonths ...string)
}

// assignmentViews converts joined store rows into the pure domain shape.
func assignmentViews(views []models.AssignmentView) []rent.Assignment {
	out := make([]rent.Assignment, 0, len(views))
	for _, v := range views {
		out = append(out, rent.Assignment{
			RenterID:         v.RenterID,
			RenterCode:       v.RenterCode,
			RenterName:       v.RenterName,
			ShopID:           v.ShopID,
			ShopActive:       v.ShopActive,
			RentAmount:       v.RentAmount,
			ExpectedDeposit:  v.ExpectedDeposit,
			CollectedDeposit: v.CollectedDeposit,
		})
	}
	return out
}
