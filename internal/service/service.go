package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/maidvally/backoffice/internal/entity"
	"github.com/maidvally/backoffice/internal/report"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateClient(ctx context.Context, c entity.Client) error
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	SetClientStatus(ctx context.Context, id uuid.UUID, status entity.ClientStatus) error
	JobTypes(ctx context.Context) ([]entity.JobType, error)
	CreateJob(ctx context.Context, j entity.Job) error
	Job(ctx context.Context, id uuid.UUID) (entity.JobSummary, error)
	Jobs(ctx context.Context) ([]entity.JobSummary, error)
	JobsStartedSince(ctx context.Context, since time.Time) ([]entity.JobSummary, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	CreatePayment(ctx context.Context, p entity.Payment) error
	DeleteJobPayments(ctx context.Context, jobID uuid.UUID) error
	CreateExpense(ctx context.Context, e entity.Expense) error
	UnpaidPayments(ctx context.Context) ([]entity.UnpaidPayment, error)
	PaidPaymentsSince(ctx context.Context, since time.Time) ([]entity.Payment, error)
	ClientJobs(ctx context.Context, clientID uuid.UUID, f entity.JobFilter) ([]entity.JobSummary, error)
}

type Mailer interface {
	Send(subject, body string, recipients []string) error
}

type InvoicingClient interface {
	SubmitInvoice(ctx context.Context, payload entity.InvoicePayload) (json.RawMessage, error)
}

// Notifications is the report-delivery configuration, passed in explicitly
// rather than read from ambient process state.
type Notifications struct {
	Enabled bool
	Email   string
}

type Service struct {
	repo          Repository
	mailer        Mailer
	invoicing     InvoicingClient
	notifications Notifications
}

func New(repo Repository, mailer Mailer, invoicing InvoicingClient, notifications Notifications) *Service {
	return &Service{
		repo:          repo,
		mailer:        mailer,
		invoicing:     invoicing,
		notifications: notifications,
	}
}

// SendTestEmail sends a plain test message to the business address.
func (s *Service) SendTestEmail(ctx context.Context) (string, error) {
	if !s.notifications.Enabled {
		return "", entity.ErrNotificationsDisabled
	}

	body := fmt.Sprintf("This is a test email. The date and time is %s",
		time.Now().UTC().Format("2006-01-02 15:04:05"))

	err := s.mailer.Send("Test Email", body, []string{s.notifications.Email})
	if err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	return "Test email sent successfully.", nil
}

// WeeklyReminder categorizes every unpaid payment by due date and emails
// the weekly reminder. Returns before touching the database when
// notifications are disabled.
func (s *Service) WeeklyReminder(ctx context.Context) (string, error) {
	if !s.notifications.Enabled {
		return "", entity.ErrNotificationsDisabled
	}

	unpaid, err := s.repo.UnpaidPayments(ctx)
	if err != nil {
		return "", fmt.Errorf("get unpaid payments: %w", err)
	}

	if len(unpaid) == 0 {
		return "No unpaid jobs found", nil
	}

	now := time.Now().UTC()
	r := report.CategorizeUnpaid(unpaid, now)

	err = s.mailer.Send(report.WeeklySubject(r), report.FormatWeeklyReminder(r, now), []string{s.notifications.Email})
	if err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	return fmt.Sprintf("Weekly reminder sent: %d overdue, %d due soon", len(r.Overdue), len(r.DueSoon)), nil
}

// MonthlyReminder emails the per-client debt analysis. When nothing is
// outstanding it still sends the all-clear status report.
func (s *Service) MonthlyReminder(ctx context.Context) (string, error) {
	if !s.notifications.Enabled {
		return "", entity.ErrNotificationsDisabled
	}

	unpaid, err := s.repo.UnpaidPayments(ctx)
	if err != nil {
		return "", fmt.Errorf("get unpaid payments: %w", err)
	}

	now := time.Now().UTC()
	debts := report.AnalyzeByClient(unpaid, now)
	total := report.CategorizeUnpaid(unpaid, now).TotalUnpaid

	err = s.mailer.Send(
		report.MonthlyAnalysisSubject(debts, total),
		report.FormatMonthlyAnalysis(debts, total, len(unpaid), now),
		[]string{s.notifications.Email},
	)
	if err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	if len(debts) == 0 {
		return "Monthly reminder sent: No unpaid jobs", nil
	}

	return fmt.Sprintf("Monthly analysis sent: %d clients, %s%s outstanding",
		len(debts), report.Currency, total.StringFixed(2)), nil
}

// MonthlyReport emails the monthly business report: revenue, expenses,
// profit, cash flow and the top clients for the month.
func (s *Service) MonthlyReport(ctx context.Context) (string, error) {
	if !s.notifications.Enabled {
		return "", entity.ErrNotificationsDisabled
	}

	now := time.Now().UTC()

	m, err := s.monthlyStats(ctx, now)
	if err != nil {
		return "", err
	}

	err = s.mailer.Send(report.MonthlyReportSubject(m, now), report.FormatMonthlyReport(m, now), []string{s.notifications.Email})
	if err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	return fmt.Sprintf("Monthly report sent: %d jobs, %s%s profit",
		m.JobCount, report.Currency, m.Profit.StringFixed(2)), nil
}

// MonthlyStats computes the current month's metrics without sending mail,
// for the dashboard endpoint.
func (s *Service) MonthlyStats(ctx context.Context) (report.Monthly, error) {
	return s.monthlyStats(ctx, time.Now().UTC())
}

func (s *Service) monthlyStats(ctx context.Context, now time.Time) (report.Monthly, error) {
	firstDay := report.FirstOfMonth(now)

	jobs, err := s.repo.JobsStartedSince(ctx, firstDay)
	if err != nil {
		return report.Monthly{}, fmt.Errorf("get this month's jobs: %w", err)
	}

	paid, err := s.repo.PaidPaymentsSince(ctx, firstDay)
	if err != nil {
		return report.Monthly{}, fmt.Errorf("get payments received this month: %w", err)
	}

	unpaid, err := s.repo.UnpaidPayments(ctx)
	if err != nil {
		return report.Monthly{}, fmt.Errorf("get unpaid payments: %w", err)
	}

	return report.BuildMonthly(jobs, paid, unpaid, now), nil
}

func (s *Service) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	if err := c.Type.Validate(); err != nil {
		return entity.Client{}, err
	}

	if err := c.Status.Validate(); err != nil {
		return entity.Client{}, err
	}

	if c.Name == "" {
		return entity.Client{}, fmt.Errorf("%w: client name is required", entity.ErrInvalidArgument)
	}

	c.ID = uuid.Must(uuid.NewV4())
	c.CreatedAt = time.Now().UTC()

	err := s.repo.CreateClient(ctx, c)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	return c, nil
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	return s.repo.Clients(ctx)
}

func (s *Service) SetClientStatus(ctx context.Context, id uuid.UUID, status entity.ClientStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	return s.repo.SetClientStatus(ctx, id, status)
}

func (s *Service) JobTypes(ctx context.Context) ([]entity.JobType, error) {
	return s.repo.JobTypes(ctx)
}

func (s *Service) CreateJob(ctx context.Context, j entity.Job) (entity.Job, error) {
	j.ID = uuid.Must(uuid.NewV4())

	err := s.repo.CreateJob(ctx, j)
	if err != nil {
		return entity.Job{}, fmt.Errorf("create job: %w", err)
	}

	return j, nil
}

func (s *Service) Jobs(ctx context.Context) ([]entity.JobSummary, error) {
	return s.repo.Jobs(ctx)
}

// DeleteJob removes a job. Jobs with any recorded paid amount are kept.
func (s *Service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	job, err := s.repo.Job(ctx, id)
	if err != nil {
		return fmt.Errorf("get job %q: %w", id, err)
	}

	if job.TotalPaid.IsPositive() {
		return fmt.Errorf("job %q: %w", id, entity.ErrHasPayments)
	}

	return s.repo.DeleteJob(ctx, id)
}

// TogglePayment marks a fully paid job as unpaid by removing its payments,
// or records a full paid payment otherwise. Returns the resulting state.
func (s *Service) TogglePayment(ctx context.Context, jobID uuid.UUID) (entity.PaymentStatus, error) {
	job, err := s.repo.Job(ctx, jobID)
	if err != nil {
		return "", fmt.Errorf("get job %q: %w", jobID, err)
	}

	if job.FullyPaid() {
		err = s.repo.DeleteJobPayments(ctx, jobID)
		if err != nil {
			return "", fmt.Errorf("delete payments for job %q: %w", jobID, err)
		}

		return entity.PaymentStatusUnpaid, nil
	}

	now := time.Now().UTC()

	err = s.repo.CreatePayment(ctx, entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		JobID:       jobID,
		Amount:      job.TotalAmount,
		PaymentDate: now,
		DueDate:     now,
		Status:      entity.PaymentStatusPaid,
	})
	if err != nil {
		return "", fmt.Errorf("create payment for job %q: %w", jobID, err)
	}

	return entity.PaymentStatusPaid, nil
}

func (s *Service) AddExpense(ctx context.Context, e entity.Expense) (entity.Expense, error) {
	if err := e.Type.Validate(); err != nil {
		return entity.Expense{}, err
	}

	if _, err := s.repo.Job(ctx, e.JobID); err != nil {
		return entity.Expense{}, fmt.Errorf("get job %q: %w", e.JobID, err)
	}

	e.ID = uuid.Must(uuid.NewV4())
	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = time.Now().UTC()
	}

	err := s.repo.CreateExpense(ctx, e)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	return e, nil
}
