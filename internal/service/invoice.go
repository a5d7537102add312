package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/maidvally/backoffice/internal/entity"
	"github.com/maidvally/backoffice/internal/report"
)

// NoJobsMessage is returned when the selector matches no jobs; no call to
// the invoicing API is made in that case.
const NoJobsMessage = "No jobs to invoice"

// GenerateInvoice selects the client's jobs per the period selector and
// forwards them to the external invoicing API. Delivery failures come back
// in the result payload, not as an error.
func (s *Service) GenerateInvoice(
	ctx context.Context,
	clientID uuid.UUID,
	sel entity.InvoiceSelector,
) (entity.InvoiceResult, error) {
	client, err := s.repo.Client(ctx, clientID)
	if err != nil {
		return entity.InvoiceResult{}, fmt.Errorf("get client %q: %w", clientID, err)
	}

	jobs, err := s.repo.ClientJobs(ctx, clientID, resolveSelector(sel, time.Now().UTC()))
	if err != nil {
		return entity.InvoiceResult{}, fmt.Errorf("get jobs for client %q: %w", clientID, err)
	}

	if len(jobs) == 0 {
		return entity.InvoiceResult{Message: NoJobsMessage}, nil
	}

	payload := entity.InvoicePayload{
		ClientID:       client.ID,
		ClientName:     client.Name,
		ClientType:     client.Type.String(),
		ClientAddress:  client.Address.String(),
		ClientPostCode: client.Address.PostCode,
		Jobs:           make([]entity.InvoiceJob, 0, len(jobs)),
	}

	for _, j := range jobs {
		payload.Jobs = append(payload.Jobs, entity.InvoiceJob{
			JobID:       j.ID,
			JobType:     j.JobTypeName,
			TotalAmount: j.TotalAmount,
			TimeStarted: j.TimeStarted,
			TimeEnded:   j.TimeEnded,
			Location:    j.Location,
			Description: j.Description,
		})
	}

	resp, err := s.invoicing.SubmitInvoice(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "submit invoice", "client_id", clientID, "error", err)
		return entity.InvoiceResult{Error: err.Error()}, nil
	}

	return entity.InvoiceResult{Response: resp}, nil
}

// resolveSelector turns the period selector into a concrete job filter.
// First match wins: explicit range, current month, last month, all unpaid,
// then all jobs. The unpaid-only flag narrows whichever branch applied.
func resolveSelector(sel entity.InvoiceSelector, now time.Time) entity.JobFilter {
	f := entity.JobFilter{UnpaidOnly: sel.UnpaidOnly}

	switch {
	case sel.StartDate != nil && sel.EndDate != nil:
		start := *sel.StartDate
		end := endOfDay(*sel.EndDate)
		f.StartedFrom = &start
		f.StartedTo = &end

	case sel.Period == entity.PeriodCurrentMonth:
		start := report.FirstOfMonth(now)
		f.StartedFrom = &start

	case sel.Period == entity.PeriodLastMonth:
		thisMonth := report.FirstOfMonth(now)
		lastDay := thisMonth.AddDate(0, 0, -1)
		start := report.FirstOfMonth(lastDay)
		end := endOfDay(lastDay)
		f.StartedFrom = &start
		f.StartedTo = &end

	case sel.Period == entity.PeriodAllUnpaid:
		f.UnpaidOnly = true
	}

	return f
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
