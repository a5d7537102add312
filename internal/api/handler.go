package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/maidvally/backoffice/internal/entity"
	"github.com/maidvally/backoffice/internal/report"
)

const dateParamLayout = "2006-01-02"

type Task string

const (
	TaskTestEmail       Task = "test email"
	TaskWeeklyReminder  Task = "weekly reminder"
	TaskMonthlyReminder Task = "monthly reminder"
	TaskMonthlyReport   Task = "monthly report"
)

type Service interface {
	SendTestEmail(ctx context.Context) (string, error)
	WeeklyReminder(ctx context.Context) (string, error)
	MonthlyReminder(ctx context.Context) (string, error)
	MonthlyReport(ctx context.Context) (string, error)
	MonthlyStats(ctx context.Context) (report.Monthly, error)
	GenerateInvoice(ctx context.Context, clientID uuid.UUID, sel entity.InvoiceSelector) (entity.InvoiceResult, error)
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	SetClientStatus(ctx context.Context, id uuid.UUID, status entity.ClientStatus) error
	JobTypes(ctx context.Context) ([]entity.JobType, error)
	CreateJob(ctx context.Context, j entity.Job) (entity.Job, error)
	Jobs(ctx context.Context) ([]entity.JobSummary, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	TogglePayment(ctx context.Context, jobID uuid.UUID) (entity.PaymentStatus, error)
	AddExpense(ctx context.Context, e entity.Expense) (entity.Expense, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type CreateClientRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PostCode string `json:"postCode"`
}

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Street    string    `json:"street,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	PostCode  string    `json:"postCode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	client, err := h.s.CreateClient(ctx, entity.Client{
		Name:   req.Name,
		Type:   entity.ClientType(req.Type),
		Status: entity.ClientStatus(req.Status),
		Address: entity.Address{
			Street:   req.Street,
			City:     req.City,
			State:    req.State,
			PostCode: req.PostCode,
		},
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid client data")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create client")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, toClientResponse(client))
}

func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list clients")
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, toClientResponse(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ActivateClient(w http.ResponseWriter, r *http.Request) {
	h.setClientStatus(w, r, entity.ClientStatusActive, "Client activated successfully")
}

func (h *Handler) DeactivateClient(w http.ResponseWriter, r *http.Request) {
	h.setClientStatus(w, r, entity.ClientStatusInactive, "Client deactivated successfully")
}

func (h *Handler) setClientStatus(w http.ResponseWriter, r *http.Request, status entity.ClientStatus, msg string) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	err = h.s.SetClientStatus(ctx, clientID, status)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update client")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "message": msg})
}

// GenerateInvoice assembles invoice data for a client and forwards it to
// the invoicing API. The API response, the delivery error description, or
// the no-jobs message is returned to the caller as-is.
func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	sel, err := parseInvoiceSelector(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid period selector")
		return
	}

	result, err := h.s.GenerateInvoice(ctx, clientID, sel)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to generate invoice")
		}

		return
	}

	if len(result.Response) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(result.Response) //nolint:errcheck

		return
	}

	SendJSON(ctx, w, http.StatusOK, result)
}

func parseInvoiceSelector(r *http.Request) (entity.InvoiceSelector, error) {
	q := r.URL.Query()

	sel := entity.InvoiceSelector{
		Period:     entity.InvoicePeriod(q.Get("period")),
		UnpaidOnly: q.Get("unpaid_only") == "true" || q.Get("unpaid_only") == "1",
	}

	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return entity.InvoiceSelector{}, err
		}

		sel.StartDate = &t
	}

	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return entity.InvoiceSelector{}, err
		}

		sel.EndDate = &t
	}

	return sel, nil
}

type CreateJobRequest struct {
	ClientID    uuid.UUID       `json:"clientId"`
	JobTypeID   uuid.UUID       `json:"jobTypeId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TimeStarted time.Time       `json:"timeStarted"`
	TimeEnded   time.Time       `json:"timeEnded"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
}

type JobResponse struct {
	ID            uuid.UUID       `json:"id"`
	ClientID      uuid.UUID       `json:"clientId"`
	ClientName    string          `json:"clientName,omitempty"`
	JobTypeID     uuid.UUID       `json:"jobTypeId"`
	JobTypeName   string          `json:"jobTypeName,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TimeStarted   time.Time       `json:"timeStarted"`
	TimeEnded     time.Time       `json:"timeEnded"`
	Location      string          `json:"location,omitempty"`
	Description   string          `json:"description,omitempty"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Profit        decimal.Decimal `json:"profit"`
	FullyPaid     bool            `json:"fullyPaid"`
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateJobRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if !req.TimeEnded.After(req.TimeStarted) {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			errors.New("time_ended must be after time_started"), "End time must be after start time")
		return
	}

	job, err := h.s.CreateJob(ctx, entity.Job{
		ClientID:    req.ClientID,
		JobTypeID:   req.JobTypeID,
		TotalAmount: req.TotalAmount,
		TimeStarted: req.TimeStarted,
		TimeEnded:   req.TimeEnded,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create job")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, JobResponse{
		ID:          job.ID,
		ClientID:    job.ClientID,
		JobTypeID:   job.JobTypeID,
		TotalAmount: job.TotalAmount,
		TimeStarted: job.TimeStarted,
		TimeEnded:   job.TimeEnded,
		Location:    job.Location,
		Description: job.Description,
		Profit:      job.TotalAmount,
	})
}

func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobs, err := h.s.Jobs(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list jobs")
		return
	}

	resp := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, toJobResponse(j))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.FromString(chi.URLParam(r, "job_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid job id")
		return
	}

	err = h.s.DeleteJob(ctx, jobID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Job not found")
		case errors.Is(err, entity.ErrHasPayments):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Cannot delete job with payments")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete job")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) TogglePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.FromString(chi.URLParam(r, "job_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid job id")
		return
	}

	status, err := h.s.TogglePayment(ctx, jobID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Job not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to toggle payment")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"status": status.String()})
}

type AddExpenseRequest struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate *time.Time      `json:"expenseDate"`
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.FromString(chi.URLParam(r, "job_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid job id")
		return
	}

	var req AddExpenseRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	expense := entity.Expense{
		JobID:       jobID,
		Type:        entity.ExpenseType(req.Type),
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}

	expense, err = h.s.AddExpense(ctx, expense)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid expense data")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Job not found")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to add expense")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, map[string]any{
		"id":          expense.ID,
		"jobId":       expense.JobID,
		"type":        expense.Type.String(),
		"amount":      expense.Amount,
		"expenseDate": expense.ExpenseDate,
	})
}

func (h *Handler) JobTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	types, err := h.s.JobTypes(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list job types")
		return
	}

	resp := make([]map[string]any, 0, len(types))
	for _, jt := range types {
		resp = append(resp, map[string]any{"id": jt.ID, "name": jt.Name})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type DashboardResponse struct {
	JobCount         int             `json:"jobCount"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Profit           decimal.Decimal `json:"profit"`
	CashReceived     decimal.Decimal `json:"cashReceived"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalOverdue     decimal.Decimal `json:"totalOverdue"`
	OverdueCount     int             `json:"overdueCount"`
	CollectionRate   string          `json:"collectionRate"`
	AvgJobValue      decimal.Decimal `json:"avgJobValue"`
	TopClients       []TopClient     `json:"topClients"`
}

type TopClient struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.s.MonthlyStats(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to compute dashboard metrics")
		return
	}

	resp := DashboardResponse{
		JobCount:         m.JobCount,
		TotalRevenue:     m.TotalRevenue,
		TotalExpenses:    m.TotalExpenses,
		Profit:           m.Profit,
		CashReceived:     m.CashReceived,
		TotalOutstanding: m.TotalOutstanding,
		TotalOverdue:     m.TotalOverdue,
		OverdueCount:     m.OverdueCount,
		CollectionRate:   m.CollectionRate.StringFixed(1),
		AvgJobValue:      m.AvgJobValue,
		TopClients:       make([]TopClient, 0, len(m.TopClients)),
	}

	for _, c := range m.TopClients {
		resp.TopClients = append(resp.TopClients, TopClient{Name: c.Name, Revenue: c.Revenue})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// RunTask triggers one of the scheduled report tasks immediately. A
// disabled notification feature is a recognized no-op, not an error.
func (h *Handler) RunTask(task Task) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			result string
			err    error
		)

		switch task {
		case TaskTestEmail:
			result, err = h.s.SendTestEmail(ctx)
		case TaskWeeklyReminder:
			result, err = h.s.WeeklyReminder(ctx)
		case TaskMonthlyReminder:
			result, err = h.s.MonthlyReminder(ctx)
		case TaskMonthlyReport:
			result, err = h.s.MonthlyReport(ctx)
		default:
			SendJSONErr(ctx, w, http.StatusNotFound, nil, "Unknown task")
			return
		}

		if err != nil {
			if errors.Is(err, entity.ErrNotificationsDisabled) {
				SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "Business notifications are disabled."})
				return
			}

			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Task failed")

			return
		}

		SendJSON(ctx, w, http.StatusOK, map[string]string{"message": result})
	}
}

func toClientResponse(c entity.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type.String(),
		Status:    c.Status.String(),
		Street:    c.Address.Street,
		City:      c.Address.City,
		State:     c.Address.State,
		PostCode:  c.Address.PostCode,
		CreatedAt: c.CreatedAt,
	}
}

func toJobResponse(j entity.JobSummary) JobResponse {
	return JobResponse{
		ID:            j.ID,
		ClientID:      j.ClientID,
		ClientName:    j.ClientName,
		JobTypeID:     j.JobTypeID,
		JobTypeName:   j.JobTypeName,
		TotalAmount:   j.TotalAmount,
		TimeStarted:   j.TimeStarted,
		TimeEnded:     j.TimeEnded,
		Location:      j.Location,
		Description:   j.Description,
		TotalPaid:     j.TotalPaid,
		TotalExpenses: j.TotalExpenses,
		Profit:        j.Profit(),
		FullyPaid:     j.FullyPaid(),
	}
}
