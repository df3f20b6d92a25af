package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

type ShopRepository struct {
	DB *pgxpool.Pool
}

func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{DB: db}
}

func (r *ShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	query := `
		INSERT INTO shops (shop_no, complex_id, category, rent_amount, rent_collection_day, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		shop.ShopNo, shop.ComplexID, shop.Category, shop.RentAmount,
		shop.RentCollectionDay, shop.IsActive,
	).Scan(&shop.ID, &shop.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.Conflict("shop number already exists in this complex")
	}
	return err
}

func (r *ShopRepository) Get(ctx context.Context, id int) (*models.Shop, error) {
	query := `
		SELECT s.id, s.shop_no, COALESCE(s.complex_id, 0), COALESCE(c.name, ''),
		       COALESCE(s.category, 'Numeric'), s.rent_amount, s.rent_collection_day,
		       s.is_active, s.created_at
		FROM shops s
		LEFT JOIN complexes c ON s.complex_id = c.id
		WHERE s.id = $1
	`

	shop := &models.Shop{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&shop.ID, &shop.ShopNo, &shop.ComplexID, &shop.ComplexName,
		&shop.Category, &shop.RentAmount, &shop.RentCollectionDay,
		&shop.IsActive, &shop.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("shop not found")
	}
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// List returns shops with complex names joined; activeOnly filters out
// deactivated shops (they carry no expected rent).
func (r *ShopRepository) List(ctx context.Context, activeOnly bool) ([]*models.Shop, error) {
	query := `
		SELECT s.id, s.shop_no, COALESCE(s.complex_id, 0), COALESCE(c.name, ''),
		       COALESCE(s.category, 'Numeric'), s.rent_amount, s.rent_collection_day,
		       s.is_active, s.created_at
		FROM shops s
		LEFT JOIN complexes c ON s.complex_id = c.id
	`
	if activeOnly {
		query += ` WHERE s.is_active`
	}
	query += ` ORDER BY c.name, s.shop_no`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*models.Shop
	for rows.Next() {
		shop := &models.Shop{}
		err := rows.Scan(
			&shop.ID, &shop.ShopNo, &shop.ComplexID, &shop.ComplexName,
			&shop.Category, &shop.RentAmount, &shop.RentCollectionDay,
			&shop.IsActive, &shop.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, rows.Err()
}

func (r *ShopRepository) Update(ctx context.Context, shop *models.Shop) error {
	query := `
		UPDATE shops
		SET shop_no = $1, complex_id = $2, category = $3, rent_amount = $4,
		    rent_collection_day = $5, is_active = $6
		WHERE id = $7
	`

	tag, err := r.DB.Exec(ctx, query,
		shop.ShopNo, shop.ComplexID, shop.Category, shop.RentAmount,
		shop.RentCollectionDay, shop.IsActive, shop.ID,
	)
	if isUniqueViolation(err) {
		return apperrors.Conflict("shop number already exists in this complex")
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("shop not found")
	}
	return nil
}

func (r *ShopRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("shop not found")
	}
	return nil
}

// --- complexes ---

type ComplexRepository struct {
	DB *pgxpool.Pool
}

func NewComplexRepository(db *pgxpool.Pool) *ComplexRepository {
	return &ComplexRepository{DB: db}
}

func (r *ComplexRepository) Create(ctx context.Context, c *models.Complex) error {
	err := r.DB.QueryRow(ctx, `INSERT INTO complexes (name) VALUES ($1) RETURNING id`, c.Name).
		Scan(&c.ID)
	return err
}

func (r *ComplexRepository) List(ctx context.Context) ([]*models.Complex, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name FROM complexes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complexes []*models.Complex
	for rows.Next() {
		c := &models.Complex{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		complexes = append(complexes, c)
	}

	return complexes, rows.Err()
}

func (r *ComplexRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM complexes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("complex not found")
	}
	return nil
}
