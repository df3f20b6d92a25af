package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

type RenterRepository struct {
	DB *pgxpool.Pool
}

func NewRenterRepository(db *pgxpool.Pool) *RenterRepository {
	return &RenterRepository{DB: db}
}

func (r *RenterRepository) Create(ctx context.Context, renter *models.Renter) error {
	query := `
		INSERT INTO renters (renter_code, name, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query, renter.RenterCode, renter.Name, renter.Phone).
		Scan(&renter.ID, &renter.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.Conflict("renter code already in use")
	}
	return err
}

func (r *RenterRepository) Get(ctx context.Context, id int) (*models.Renter, error) {
	query := `
		SELECT id, renter_code, name, COALESCE(phone, ''), created_at
		FROM renters
		WHERE id = $1
	`

	renter := &models.Renter{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&renter.ID, &renter.RenterCode, &renter.Name, &renter.Phone, &renter.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("renter not found")
	}
	if err != nil {
		return nil, err
	}
	return renter, nil
}

func (r *RenterRepository) List(ctx context.Context) ([]*models.Renter, error) {
	query := `
		SELECT id, renter_code, name, COALESCE(phone, ''), created_at
		FROM renters
		ORDER BY renter_code DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var renters []*models.Renter
	for rows.Next() {
		renter := &models.Renter{}
		err := rows.Scan(&renter.ID, &renter.RenterCode, &renter.Name, &renter.Phone, &renter.CreatedAt)
		if err != nil {
			return nil, err
		}
		renters = append(renters, renter)
	}

	return renters, rows.Err()
}

func (r *RenterRepository) Update(ctx context.Context, renter *models.Renter) error {
	query := `UPDATE renters SET renter_code = $1, name = $2, phone = $3 WHERE id = $4`

	tag, err := r.DB.Exec(ctx, query, renter.RenterCode, renter.Name, renter.Phone, renter.ID)
	if isUniqueViolation(err) {
		return apperrors.Conflict("renter code already in use")
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("renter not found")
	}
	return nil
}

// Delete removes a renter; assignments and payments cascade via FK.
func (r *RenterRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM renters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("renter not found")
	}
	return nil
}
