package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoicePeriod string

const (
	PeriodCurrentMonth InvoicePeriod = "current_month"
	PeriodLastMonth    InvoicePeriod = "last_month"
	PeriodAllUnpaid    InvoicePeriod = "all_unpaid"
)

// InvoiceSelector describes which of a client's jobs go onto an invoice.
// Resolution precedence: explicit date range, then the named period, then
// all jobs. UnpaidOnly additionally filters whichever selection applies.
type InvoiceSelector struct {
	Period     InvoicePeriod
	StartDate  *time.Time
	EndDate    *time.Time
	UnpaidOnly bool
}

// JobFilter is the resolved selector the repository queries with.
type JobFilter struct {
	StartedFrom *time.Time
	StartedTo   *time.Time
	UnpaidOnly  bool
}

type InvoicePayload struct {
	ClientID       uuid.UUID    `json:"clientId"`
	ClientName     string       `json:"clientName"`
	ClientType     string       `json:"clientType"`
	ClientAddress  string       `json:"clientAddress"`
	ClientPostCode string       `json:"clientPostCode"`
	Jobs           []InvoiceJob `json:"jobs"`
}

type InvoiceJob struct {
	JobID       uuid.UUID       `json:"jobId"`
	JobType     string          `json:"jobType"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TimeStarted time.Time       `json:"timeStarted"`
	TimeEnded   time.Time       `json:"timeEnded"`
	Location    string          `json:"location,omitempty"`
	Description string          `json:"description,omitempty"`
}

// InvoiceResult is returned to the caller verbatim: either the invoicing
// API response, a delivery error description, or the no-jobs message.
type InvoiceResult struct {
	Message  string          `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}
