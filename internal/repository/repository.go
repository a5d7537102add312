package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maidvally/backoffice/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) error {
	const q = `
	INSERT INTO clients (id, name, client_type, status, street, city, state, post_code, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.Name,
		c.Type,
		c.Status,
		zeronull.Text(c.Address.Street),
		zeronull.Text(c.Address.City),
		zeronull.Text(c.Address.State),
		zeronull.Text(c.Address.PostCode),
		c.CreatedAt,
	)

	return err
}

func (r *Repository) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1"

	c, err := scanClient(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Client{}, entity.ErrNotFound
	}

	return c, err
}

func (r *Repository) Clients(ctx context.Context) (clients []entity.Client, err error) {
	q := selectClient + " ORDER BY name"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *Repository) SetClientStatus(ctx context.Context, id uuid.UUID, status entity.ClientStatus) error {
	const q = `UPDATE clients SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) JobTypes(ctx context.Context) (types []entity.JobType, err error) {
	const q = `SELECT id, name, created_at FROM job_types ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var jt entity.JobType

		err = rows.Scan(&jt.ID, &jt.Name, &jt.CreatedAt)
		if err != nil {
			return nil, err
		}

		types = append(types, jt)
	}

	return types, rows.Err()
}

func (r *Repository) CreateJob(ctx context.Context, j entity.Job) error {
	const q = `
	INSERT INTO jobs (id, client_id, job_type_id, total_amount, time_started, time_ended, location, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		j.ID,
		j.ClientID,
		j.JobTypeID,
		j.TotalAmount,
		j.TimeStarted,
		j.TimeEnded,
		zeronull.Text(j.Location),
		zeronull.Text(j.Description),
	)

	return err
}

func (r *Repository) Job(ctx context.Context, id uuid.UUID) (entity.JobSummary, error) {
	q := selectJobSummary + " WHERE j.id = $1"

	j, err := scanJobSummary(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.JobSummary{}, entity.ErrNotFound
	}

	return j, err
}

func (r *Repository) Jobs(ctx context.Context) ([]entity.JobSummary, error) {
	q := selectJobSummary + " ORDER BY j.time_started DESC"
	return r.queryJobSummaries(ctx, q)
}

// JobsStartedSince returns jobs with time_started at or after the boundary,
// the "this month's jobs" input to the monthly report.
func (r *Repository) JobsStartedSince(ctx context.Context, since time.Time) ([]entity.JobSummary, error) {
	q := selectJobSummary + " WHERE j.time_started >= $1 ORDER BY j.time_started"
	return r.queryJobSummaries(ctx, q, since)
}

func (r *Repository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) error {
	const q = `
	INSERT INTO payments (id, job_id, amount, payment_date, due_date, status, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.JobID,
		p.Amount,
		p.PaymentDate,
		p.DueDate,
		p.Status,
		zeronull.Text(p.Notes),
	)

	return err
}

func (r *Repository) DeleteJobPayments(ctx context.Context, jobID uuid.UUID) error {
	const q = `DELETE FROM payments WHERE job_id = $1`

	_, err := r.db.Exec(ctx, q, jobID)

	return err
}

func (r *Repository) CreateExpense(ctx context.Context, e entity.Expense) error {
	const q = `
	INSERT INTO expenses (id, job_id, expense_type, description, amount, expense_date)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		e.ID,
		e.JobID,
		e.Type,
		zeronull.Text(e.Description),
		e.Amount,
		e.ExpenseDate,
	)

	return err
}

// UnpaidPayments returns every unpaid payment joined with its owning job's
// description and client. Ordered by due date then id so repeated report
// runs over the same data produce identical output.
func (r *Repository) UnpaidPayments(ctx context.Context) (payments []entity.UnpaidPayment, err error) {
	const q = `
	SELECT p.id, p.job_id, p.amount, p.payment_date, p.due_date, p.status, p.notes,
	       c.id, c.name, j.description
	FROM payments p
	JOIN jobs j ON j.id = p.job_id
	JOIN clients c ON c.id = j.client_id
	WHERE p.status = $1
	ORDER BY p.due_date, p.id
	`

	rows, err := r.db.Query(ctx, q, entity.PaymentStatusUnpaid)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var p entity.UnpaidPayment

		err = rows.Scan(
			&p.ID,
			&p.JobID,
			&p.Amount,
			&p.PaymentDate,
			&p.DueDate,
			&p.Status,
			(*zeronull.Text)(&p.Notes),
			&p.ClientID,
			&p.ClientName,
			(*zeronull.Text)(&p.JobDescription),
		)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// PaidPaymentsSince returns payments marked PAID with a payment date at or
// after the boundary.
func (r *Repository) PaidPaymentsSince(ctx context.Context, since time.Time) (payments []entity.Payment, err error) {
	const q = `
	SELECT id, job_id, amount, payment_date, due_date, status, notes
	FROM payments
	WHERE status = $1 AND payment_date >= $2
	ORDER BY payment_date, id
	`

	rows, err := r.db.Query(ctx, q, entity.PaymentStatusPaid, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var p entity.Payment

		err = rows.Scan(
			&p.ID,
			&p.JobID,
			&p.Amount,
			&p.PaymentDate,
			&p.DueDate,
			&p.Status,
			(*zeronull.Text)(&p.Notes),
		)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}
