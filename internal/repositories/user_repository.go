package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, email, password, full_name, role, is_approved)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.DB.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role, user.IsApproved,
	).Scan(&user.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.Conflict("email already registered")
	}
	return err
}

func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	return r.getWhere(ctx, `id = $1::uuid`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getWhere(ctx, `email = $1`, email)
}

func (r *UserRepository) getWhere(ctx context.Context, cond string, arg interface{}) (*models.User, error) {
	query := `
		SELECT id::text, email, password, COALESCE(full_name, ''), role, is_approved, created_at
		FROM users
		WHERE ` + cond

	user := &models.User{}
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName,
		&user.Role, &user.IsApproved, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id::text, email, password, COALESCE(full_name, ''), role, is_approved, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.FullName,
			&user.Role, &user.IsApproved, &user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// SetApproved flips the signup-approval flag (owner/admin action).
func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE users SET is_approved = $1 WHERE id = $2::uuid`, approved, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("user not found")
	}
	return nil
}
