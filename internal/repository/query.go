package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/maidvally/backoffice/internal/entity"
)

const selectClient = `
	SELECT id, name, client_type, status, street, city, state, post_code, created_at
	FROM clients`

const selectJobSummary = `
	SELECT j.id, j.client_id, j.job_type_id, j.total_amount, j.time_started, j.time_ended,
	       j.location, j.description, c.name, t.name,
	       COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.job_id = j.id AND p.status = 'PAID'), 0),
	       COALESCE((SELECT SUM(e.amount) FROM expenses e WHERE e.job_id = j.id), 0)
	FROM jobs j
	JOIN clients c ON c.id = j.client_id
	JOIN job_types t ON t.id = j.job_type_id`

// unpaidJobCond mirrors the legacy unpaid check: a job counts as unpaid when
// it has no payments, or when a single arbitrary payment row is UNPAID. This
// deliberately differs from JobSummary.FullyPaid, which compares the paid
// aggregate against the job amount; the two rules are kept apart until the
// intended business semantics are confirmed.
const unpaidJobCond = `(
	NOT EXISTS (SELECT 1 FROM payments p WHERE p.job_id = j.id)
	OR (SELECT p.status FROM payments p WHERE p.job_id = j.id LIMIT 1) = 'UNPAID'
)`

// ClientJobs returns the client's jobs matching the resolved invoice filter.
func (r *Repository) ClientJobs(
	ctx context.Context,
	clientID uuid.UUID,
	f entity.JobFilter,
) ([]entity.JobSummary, error) {
	stmt := sq.Select(
		"j.id",
		"j.client_id",
		"j.job_type_id",
		"j.total_amount",
		"j.time_started",
		"j.time_ended",
		"j.location",
		"j.description",
		"c.name",
		"t.name",
		"COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.job_id = j.id AND p.status = 'PAID'), 0)",
		"COALESCE((SELECT SUM(e.amount) FROM expenses e WHERE e.job_id = j.id), 0)",
	).
		From("jobs j").
		Join("clients c ON c.id = j.client_id").
		Join("job_types t ON t.id = j.job_type_id").
		Where(sq.Eq{"j.client_id": clientID}).
		OrderBy("j.time_started").
		PlaceholderFormat(sq.Dollar)

	if f.StartedFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"j.time_started": *f.StartedFrom})
	}

	if f.StartedTo != nil {
		stmt = stmt.Where(sq.LtOrEq{"j.time_started": *f.StartedTo})
	}

	if f.UnpaidOnly {
		stmt = stmt.Where(unpaidJobCond)
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryJobSummaries(ctx, sql, args...)
}

func (r *Repository) queryJobSummaries(ctx context.Context, q string, args ...any) (jobs []entity.JobSummary, err error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		j, err := scanJobSummary(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func scanJobSummary(row pgx.Row) (j entity.JobSummary, err error) {
	err = row.Scan(
		&j.ID,
		&j.ClientID,
		&j.JobTypeID,
		&j.TotalAmount,
		&j.TimeStarted,
		&j.TimeEnded,
		(*zeronull.Text)(&j.Location),
		(*zeronull.Text)(&j.Description),
		&j.ClientName,
		&j.JobTypeName,
		&j.TotalPaid,
		&j.TotalExpenses,
	)

	return j, err
}

func scanClient(row pgx.Row) (c entity.Client, err error) {
	err = row.Scan(
		&c.ID,
		&c.Name,
		&c.Type,
		&c.Status,
		(*zeronull.Text)(&c.Address.Street),
		(*zeronull.Text)(&c.Address.City),
		(*zeronull.Text)(&c.Address.State),
		(*zeronull.Text)(&c.Address.PostCode),
		&c.CreatedAt,
	)

	return c, err
}
