package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maidvally/backoffice/internal/entity"
	"github.com/maidvally/backoffice/internal/mocks"
	"github.com/maidvally/backoffice/internal/report"
	"github.com/maidvally/backoffice/internal/service"
)

var notificationsOn = service.Notifications{Enabled: true, Email: "owner@example.com"}

func TestService_WeeklyReminder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	now := time.Now().UTC()

	unpaid := []entity.UnpaidPayment{
		{
			Payment: entity.Payment{
				ID:      uuid.Must(uuid.NewV4()),
				Amount:  decimal.NewFromFloat(120),
				DueDate: now.AddDate(0, 0, -5),
				Status:  entity.PaymentStatusUnpaid,
			},
			ClientID:   uuid.Must(uuid.NewV4()),
			ClientName: "Acme Ltd",
		},
		{
			Payment: entity.Payment{
				ID:      uuid.Must(uuid.NewV4()),
				Amount:  decimal.NewFromFloat(80),
				DueDate: now.AddDate(0, 0, 3),
				Status:  entity.PaymentStatusUnpaid,
			},
			ClientID:   uuid.Must(uuid.NewV4()),
			ClientName: "Beta Homes",
		},
	}

	repo.EXPECT().UnpaidPayments(context.Background()).Return(unpaid, nil)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any(), []string{"owner@example.com"}).Return(nil)

	s := service.New(repo, mailer, nil, notificationsOn)

	result, err := s.WeeklyReminder(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Weekly reminder sent: 1 overdue, 1 due soon", result)
}

func TestService_WeeklyReminder_NoUnpaid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	repo.EXPECT().UnpaidPayments(context.Background()).Return(nil, nil)

	s := service.New(repo, mailer, nil, notificationsOn)

	// No mail is sent when there is nothing to remind about.
	result, err := s.WeeklyReminder(context.Background())
	require.NoError(t, err)
	require.Equal(t, "No unpaid jobs found", result)
}

func TestService_NotificationsDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	// Neither the repository nor the mailer may be touched.
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	s := service.New(repo, mailer, nil, service.Notifications{Enabled: false})

	for name, task := range map[string]func(context.Context) (string, error){
		"test email":       s.SendTestEmail,
		"weekly reminder":  s.WeeklyReminder,
		"monthly reminder": s.MonthlyReminder,
		"monthly report":   s.MonthlyReport,
	} {
		_, err := task(context.Background())
		require.ErrorIs(t, err, entity.ErrNotificationsDisabled, name)
	}
}

func TestService_MonthlyReminder_AllClear(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	repo.EXPECT().UnpaidPayments(context.Background()).Return(nil, nil)

	// The all-clear status report still goes out.
	mailer.EXPECT().
		Send("📊 Monthly Payment Status - All Clear! 🎉", gomock.Any(), []string{"owner@example.com"}).
		Return(nil)

	s := service.New(repo, mailer, nil, notificationsOn)

	result, err := s.MonthlyReminder(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Monthly reminder sent: No unpaid jobs", result)
}

func TestService_MonthlyReminder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	unpaid := []entity.UnpaidPayment{
		{
			Payment: entity.Payment{
				ID:      uuid.Must(uuid.NewV4()),
				Amount:  decimal.NewFromFloat(250.50),
				DueDate: time.Now().UTC().AddDate(0, 0, -12),
				Status:  entity.PaymentStatusUnpaid,
			},
			ClientID:   uuid.Must(uuid.NewV4()),
			ClientName: "Acme Ltd",
		},
	}

	repo.EXPECT().UnpaidPayments(context.Background()).Return(unpaid, nil)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any(), []string{"owner@example.com"}).Return(nil)

	s := service.New(repo, mailer, nil, notificationsOn)

	result, err := s.MonthlyReminder(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Monthly analysis sent: 1 clients, £250.50 outstanding", result)
}

func TestService_MonthlyReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	jobs := []entity.JobSummary{
		{
			Job:           entity.Job{TotalAmount: decimal.NewFromFloat(300)},
			ClientName:    "Acme Ltd",
			TotalExpenses: decimal.NewFromFloat(40),
		},
	}

	repo.EXPECT().JobsStartedSince(context.Background(), gomock.Any()).Return(jobs, nil)
	repo.EXPECT().PaidPaymentsSince(context.Background(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().UnpaidPayments(context.Background()).Return(nil, nil)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any(), []string{"owner@example.com"}).Return(nil)

	s := service.New(repo, mailer, nil, notificationsOn)

	result, err := s.MonthlyReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Monthly report sent: 1 jobs, £260.00 profit", result)
}

func TestService_MonthlyStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	firstOfMonth := report.FirstOfMonth(time.Now().UTC())

	repo.EXPECT().JobsStartedSince(context.Background(), firstOfMonth).Return(nil, nil)
	repo.EXPECT().PaidPaymentsSince(context.Background(), firstOfMonth).Return(nil, nil)
	repo.EXPECT().UnpaidPayments(context.Background()).Return(nil, nil)

	s := service.New(repo, nil, nil, service.Notifications{Enabled: false})

	// The dashboard works even with notifications off.
	m, err := s.MonthlyStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, m.JobCount)
}

func TestService_CreateClient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	repo.EXPECT().CreateClient(context.Background(), gomock.Any()).Return(nil)

	s := service.New(repo, nil, nil, notificationsOn)

	created, err := s.CreateClient(context.Background(), entity.Client{
		Name:   "Acme Ltd",
		Type:   entity.ClientTypeCompany,
		Status: entity.ClientStatusActive,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsNil())
	require.False(t, created.CreatedAt.IsZero())
}

func TestService_CreateClient_Invalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	s := service.New(repo, nil, nil, notificationsOn)

	for name, client := range map[string]entity.Client{
		"empty name": {
			Type:   entity.ClientTypeCompany,
			Status: entity.ClientStatusActive,
		},
		"unknown type": {
			Name:   "Acme Ltd",
			Type:   "CORPORATE",
			Status: entity.ClientStatusActive,
		},
		"unknown status": {
			Name:   "Acme Ltd",
			Type:   entity.ClientTypeCompany,
			Status: "PAUSED",
		},
	} {
		_, err := s.CreateClient(context.Background(), client)
		require.ErrorIs(t, err, entity.ErrInvalidArgument, name)
	}
}

func TestService_DeleteJob_WithPayments(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	jobID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Job(context.Background(), jobID).Return(entity.JobSummary{
		Job:       entity.Job{ID: jobID, TotalAmount: decimal.NewFromFloat(100)},
		TotalPaid: decimal.NewFromFloat(50),
	}, nil)

	s := service.New(repo, nil, nil, notificationsOn)

	err := s.DeleteJob(context.Background(), jobID)
	require.ErrorIs(t, err, entity.ErrHasPayments)
}

func TestService_DeleteJob(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	jobID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Job(context.Background(), jobID).Return(entity.JobSummary{
		Job: entity.Job{ID: jobID, TotalAmount: decimal.NewFromFloat(100)},
	}, nil)
	repo.EXPECT().DeleteJob(context.Background(), jobID).Return(nil)

	s := service.New(repo, nil, nil, notificationsOn)

	require.NoError(t, s.DeleteJob(context.Background(), jobID))
}

func TestService_TogglePayment(t *testing.T) {
	t.Parallel()

	jobID := uuid.Must(uuid.NewV4())

	for _, tt := range []struct {
		name       string
		paid       float64
		wantStatus entity.PaymentStatus
	}{
		{
			name:       "unpaid job becomes paid",
			paid:       0,
			wantStatus: entity.PaymentStatusPaid,
		},
		{
			name:       "partially paid job becomes paid",
			paid:       40,
			wantStatus: entity.PaymentStatusPaid,
		},
		{
			name:       "paid job becomes unpaid",
			paid:       100,
			wantStatus: entity.PaymentStatusUnpaid,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)

			repo.EXPECT().Job(context.Background(), jobID).Return(entity.JobSummary{
				Job:       entity.Job{ID: jobID, TotalAmount: decimal.NewFromFloat(100)},
				TotalPaid: decimal.NewFromFloat(tt.paid),
			}, nil)

			if tt.wantStatus == entity.PaymentStatusUnpaid {
				repo.EXPECT().DeleteJobPayments(context.Background(), jobID).Return(nil)
			} else {
				repo.EXPECT().CreatePayment(context.Background(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p entity.Payment) error {
						require.Equal(t, jobID, p.JobID)
						require.Equal(t, entity.PaymentStatusPaid, p.Status)
						require.Equal(t, "100", p.Amount.String())

						return nil
					})
			}

			s := service.New(repo, nil, nil, notificationsOn)

			status, err := s.TogglePayment(context.Background(), jobID)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestService_AddExpense_JobMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	jobID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Job(context.Background(), jobID).Return(entity.JobSummary{}, entity.ErrNotFound)

	s := service.New(repo, nil, nil, notificationsOn)

	_, err := s.AddExpense(context.Background(), entity.Expense{
		JobID:  jobID,
		Type:   entity.ExpenseTypeSupplies,
		Amount: decimal.NewFromFloat(10),
	})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_SendTestEmail_MailerFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	mailer.EXPECT().Send("Test Email", gomock.Any(), []string{"owner@example.com"}).
		Return(errors.New("smtp: connection refused"))

	s := service.New(nil, mailer, nil, notificationsOn)

	_, err := s.SendTestEmail(context.Background())
	require.ErrorContains(t, err, "send mail")
}
