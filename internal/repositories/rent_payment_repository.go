package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
)

type RentPaymentRepository struct {
	DB *pgxpool.Pool
}

func NewRentPaymentRepository(db *pgxpool.Pool) *RentPaymentRepository {
	return &RentPaymentRepository{DB: db}
}

const paymentColumns = `
	id, renter_id, COALESCE(collector_user_id::text, ''), period_month,
	expected_amount, received_amount, status, COALESCE(payment_mode, 'cash'),
	COALESCE(notes, ''), to_char(collection_date, 'YYYY-MM-DD'), created_at
`

func scanPayment(row pgx.Row) (*models.RentPayment, error) {
	p := &models.RentPayment{}
	err := row.Scan(
		&p.ID,
		&p.RenterID,
		&p.CollectorUserID,
		&p.PeriodMonth,
		&p.ExpectedAmount,
		&p.ReceivedAmount,
		&p.Status,
		&p.PaymentMode,
		&p.Notes,
		&p.CollectionDate,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a single payment row. A second row for the same renter and
// period trips the unique constraint and surfaces as a ConflictError.
func (r *RentPaymentRepository) Create(ctx context.Context, payment *models.RentPayment) error {
	query := `
		INSERT INTO rent_payments (renter_id, collector_user_id, period_month, expected_amount, received_amount, status, payment_mode, notes, collection_date)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9::date)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		payment.RenterID,
		payment.CollectorUserID,
		payment.PeriodMonth,
		payment.ExpectedAmount,
		payment.ReceivedAmount,
		payment.Status,
		payment.PaymentMode,
		payment.Notes,
		payment.CollectionDate,
	).Scan(&payment.ID, &payment.CreatedAt)

	if isUniqueViolation(err) {
		return apperrors.Conflict(fmt.Sprintf("payment for %s already exists for this renter", payment.PeriodMonth))
	}
	return err
}

// CreateBatch inserts all rows of one advance distribution inside a single
// transaction. Either every row is saved or none: a unique violation on any
// row (a concurrent collection raced this distribution) rolls the whole run
// back and reports a ConflictError.
func (r *RentPaymentRepository) CreateBatch(ctx context.Context, payments []*models.RentPayment) error {
	if len(payments) == 0 {
		return nil
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin distribution transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO rent_payments (renter_id, collector_user_id, period_month, expected_amount, received_amount, status, payment_mode, notes, collection_date)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9::date)
		RETURNING id, created_at
	`

	for _, p := range payments {
		err := tx.QueryRow(ctx, query,
			p.RenterID,
			p.CollectorUserID,
			p.PeriodMonth,
			p.ExpectedAmount,
			p.ReceivedAmount,
			p.Status,
			p.PaymentMode,
			p.Notes,
			p.CollectionDate,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.Conflict(fmt.Sprintf("payment for %s already exists for this renter", p.PeriodMonth))
			}
			return fmt.Errorf("insert payment for %s: %w", p.PeriodMonth, err)
		}
	}

	return tx.Commit(ctx)
}

// ListByRenter returns every payment row of one renter, all periods.
func (r *RentPaymentRepository) ListByRenter(ctx context.Context, renterID int) ([]*models.RentPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM rent_payments WHERE renter_id = $1 ORDER BY created_at`

	rows, err := r.DB.Query(ctx, query, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ListByPeriod returns all payment rows recorded against one period label.
func (r *RentPaymentRepository) ListByPeriod(ctx context.Context, periodMonth string) ([]*models.RentPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM rent_payments WHERE period_month = $1`

	rows, err := r.DB.Query(ctx, query, periodMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ListByCollector returns a collector's recent collections with the renter
// identity joined in, newest first.
func (r *RentPaymentRepository) ListByCollector(ctx context.Context, collectorUserID string, limit int) ([]*models.RentPayment, error) {
	query := `
		SELECT rp.id, rp.renter_id, COALESCE(rp.collector_user_id::text, ''), rp.period_month,
		       rp.expected_amount, rp.received_amount, rp.status, COALESCE(rp.payment_mode, 'cash'),
		       COALESCE(rp.notes, ''), to_char(rp.collection_date, 'YYYY-MM-DD'), rp.created_at,
		       r.renter_code, r.name
		FROM rent_payments rp
		INNER JOIN renters r ON rp.renter_id = r.id
		WHERE rp.collector_user_id = $1::uuid
		ORDER BY rp.created_at DESC
		LIMIT $2
	`

	rows, err := r.DB.Query(ctx, query, collectorUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.RentPayment
	for rows.Next() {
		p := &models.RentPayment{}
		err := rows.Scan(
			&p.ID, &p.RenterID, &p.CollectorUserID, &p.PeriodMonth,
			&p.ExpectedAmount, &p.ReceivedAmount, &p.Status, &p.PaymentMode,
			&p.Notes, &p.CollectionDate, &p.CreatedAt,
			&p.RenterCode, &p.RenterName,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// PaymentFilter selects ledger rows for the admin payments view.
type PaymentFilter struct {
	PeriodMonth  string // exact period label
	StartDate    string // collection_date >= (YYYY-MM-DD)
	EndDate      string // collection_date <=
	SpecificDate string // collection_date =
}

// ListFiltered returns the payment ledger joined with renter and collector
// identities, filtered by period, date range or a single day.
func (r *RentPaymentRepository) ListFiltered(ctx context.Context, f PaymentFilter) ([]*models.RentPayment, error) {
	query := `
		SELECT rp.id, rp.renter_id, COALESCE(rp.collector_user_id::text, ''), rp.period_month,
		       rp.expected_amount, rp.received_amount, rp.status, COALESCE(rp.payment_mode, 'cash'),
		       COALESCE(rp.notes, ''), to_char(rp.collection_date, 'YYYY-MM-DD'), rp.created_at,
		       COALESCE(r.renter_code, ''), COALESCE(r.name, ''), COALESCE(u.full_name, '')
		FROM rent_payments rp
		LEFT JOIN renters r ON rp.renter_id = r.id
		LEFT JOIN users u ON rp.collector_user_id = u.id
	`

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.PeriodMonth != "" {
		conditions = append(conditions, "rp.period_month = "+arg(f.PeriodMonth))
	}
	if f.StartDate != "" {
		conditions = append(conditions, "rp.collection_date >= "+arg(f.StartDate)+"::date")
	}
	if f.EndDate != "" {
		conditions = append(conditions, "rp.collection_date <= "+arg(f.EndDate)+"::date")
	}
	if f.SpecificDate != "" {
		conditions = append(conditions, "rp.collection_date = "+arg(f.SpecificDate)+"::date")
	}

	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY rp.collection_date DESC, rp.id DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.RentPayment
	for rows.Next() {
		p := &models.RentPayment{}
		err := rows.Scan(
			&p.ID, &p.RenterID, &p.CollectorUserID, &p.PeriodMonth,
			&p.ExpectedAmount, &p.ReceivedAmount, &p.Status, &p.PaymentMode,
			&p.Notes, &p.CollectionDate, &p.CreatedAt,
			&p.RenterCode, &p.RenterName, &p.CollectorName,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *RentPaymentRepository) Get(ctx context.Context, id int) (*models.RentPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM rent_payments WHERE id = $1`

	p, err := scanPayment(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("payment not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update corrects amount, mode, date or notes on an existing row. Status is
// recomputed by the caller from the corrected amounts; rows are never
// deleted in normal operation.
func (r *RentPaymentRepository) Update(ctx context.Context, p *models.RentPayment) error {
	query := `
		UPDATE rent_payments
		SET received_amount = $1, status = $2, payment_mode = $3, notes = $4, collection_date = $5::date
		WHERE id = $6
	`

	tag, err := r.DB.Exec(ctx, query,
		p.ReceivedAmount, p.Status, p.PaymentMode, p.Notes, p.CollectionDate, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("payment not found")
	}
	return nil
}

func collectPayments(rows pgx.Rows) ([]*models.RentPayment, error) {
	var payments []*models.RentPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
