package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

type RenterShopRepository struct {
	DB *pgxpool.Pool
}

func NewRenterShopRepository(db *pgxpool.Pool) *RenterShopRepository {
	return &RenterShopRepository{DB: db}
}

func (r *RenterShopRepository) Create(ctx context.Context, rs *models.RenterShop) error {
	query := `
		INSERT INTO renter_shops (renter_id, shop_id, expected_deposit, deposit_amount, deposit_remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.DB.QueryRow(ctx, query,
		rs.RenterID, rs.ShopID, rs.ExpectedDeposit, rs.DepositAmount, rs.DepositRemarks,
	).Scan(&rs.ID)
	if isUniqueViolation(err) {
		return apperrors.Conflict("shop is already assigned to this renter")
	}
	return err
}

const assignmentViewQuery = `
	SELECT rs.id, rs.renter_id, r.renter_code, r.name,
	       rs.shop_id, s.shop_no, COALESCE(c.name, ''), s.is_active, s.rent_amount,
	       COALESCE(rs.expected_deposit, 0), COALESCE(rs.deposit_amount, 0)
	FROM renter_shops rs
	INNER JOIN renters r ON rs.renter_id = r.id
	INNER JOIN shops s ON rs.shop_id = s.id
	LEFT JOIN complexes c ON s.complex_id = c.id
`

// ListViews returns every renter-shop link joined with the renter identity
// and the shop's rent attribution: the reconciler's full snapshot.
func (r *RenterShopRepository) ListViews(ctx context.Context) ([]models.AssignmentView, error) {
	rows, err := r.DB.Query(ctx, assignmentViewQuery+` ORDER BY r.renter_code DESC, s.shop_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.AssignmentView
	for rows.Next() {
		var v models.AssignmentView
		err := rows.Scan(
			&v.AssignmentID, &v.RenterID, &v.RenterCode, &v.RenterName,
			&v.ShopID, &v.ShopNo, &v.ComplexName, &v.ShopActive, &v.RentAmount,
			&v.ExpectedDeposit, &v.CollectedDeposit,
		)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, rows.Err()
}

// ListViewsByRenter returns one renter's links; the distributor derives its
// frozen monthly expected rent from these.
func (r *RenterShopRepository) ListViewsByRenter(ctx context.Context, renterID int) ([]models.AssignmentView, error) {
	rows, err := r.DB.Query(ctx, assignmentViewQuery+` WHERE rs.renter_id = $1 ORDER BY s.shop_no`, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.AssignmentView
	for rows.Next() {
		var v models.AssignmentView
		err := rows.Scan(
			&v.AssignmentID, &v.RenterID, &v.RenterCode, &v.RenterName,
			&v.ShopID, &v.ShopNo, &v.ComplexName, &v.ShopActive, &v.RentAmount,
			&v.ExpectedDeposit, &v.CollectedDeposit,
		)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, rows.Err()
}

// UpdateDeposit records deposit collection on one assignment.
func (r *RenterShopRepository) UpdateDeposit(ctx context.Context, id int, amount float64, date string, remarks string) error {
	query := `
		UPDATE renter_shops
		SET deposit_amount = $1, deposit_date = NULLIF($2, '')::date, deposit_remarks = $3
		WHERE id = $4
	`

	tag, err := r.DB.Exec(ctx, query, amount, date, remarks, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("assignment not found")
	}
	return nil
}

func (r *RenterShopRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM renter_shops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("assignment not found")
	}
	return nil
}
