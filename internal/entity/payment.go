package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment status %s", ErrInvalidArgument, s)
	}
}

type Payment struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	DueDate     time.Time
	Status      PaymentStatus
	Notes       string
}

// UnpaidPayment is an unpaid payment row joined with the owning job's
// description and client, the input shape for the reminder computations.
type UnpaidPayment struct {
	Payment
	ClientID       uuid.UUID
	ClientName     string
	JobDescription string
}
