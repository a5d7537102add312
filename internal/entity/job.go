package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type JobType struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type Job struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	JobTypeID   uuid.UUID
	TotalAmount decimal.Decimal
	TimeStarted time.Time
	TimeEnded   time.Time
	Location    string
	Description string
}

// JobSummary is a job row joined with its client and job type names and the
// payment/expense aggregates, so callers never traverse relations themselves.
type JobSummary struct {
	Job
	ClientName    string
	JobTypeName   string
	TotalPaid     decimal.Decimal
	TotalExpenses decimal.Decimal
}

// Profit returns the job revenue minus its recorded expenses.
func (j JobSummary) Profit() decimal.Decimal {
	return j.TotalAmount.Sub(j.TotalExpenses)
}

// FullyPaid reports whether the paid total covers the job amount.
func (j JobSummary) FullyPaid() bool {
	return j.TotalPaid.GreaterThanOrEqual(j.TotalAmount)
}
