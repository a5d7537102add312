package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/maidvally/backoffice/internal/entity"
	"github.com/maidvally/backoffice/internal/report"
)

func TestFormatWeeklyReminder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	payments := []entity.UnpaidPayment{
		unpaid("Acme Ltd", 100, now.AddDate(0, 0, -1)),
		unpaid("Beta Homes", 50, now.AddDate(0, 0, 3)),
		unpaid("Crown Offices", 20, now.AddDate(0, 0, 10)),
	}

	r := report.CategorizeUnpaid(payments, now)

	require.Equal(t, "📋 Weekly Payment Reminder - £100.00 Overdue", report.WeeklySubject(r))

	body := report.FormatWeeklyReminder(r, now)

	require.Contains(t, body, "📋 WEEKLY PAYMENT REMINDER - 15/03/2026")
	require.Contains(t, body, "• Total Outstanding: £170.00")
	require.Contains(t, body, "• Overdue Amount: £100.00")
	require.Contains(t, body, "• Acme Ltd: £100.00 (1 days overdue)")
	require.Contains(t, body, "Service: No description")
	require.Contains(t, body, "• Beta Homes: £50.00 (due in 3 days)")
	require.Contains(t, body, "🟢 FUTURE PAYMENTS: 1 invoices (£20.00)")
	require.Contains(t, body, "• Contact overdue clients immediately")
	require.Contains(t, body, "Your Payment Tracker 💳")
}

func TestFormatWeeklyReminder_EmptyCategories(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	r := report.CategorizeUnpaid([]entity.UnpaidPayment{
		unpaid("Crown Offices", 20, now.AddDate(0, 0, 10)),
	}, now)

	body := report.FormatWeeklyReminder(r, now)

	require.Contains(t, body, "🎉 No overdue payments!")
	require.Contains(t, body, "✅ No payments due this week")
	require.NotContains(t, body, "• Contact overdue clients immediately")
	require.NotContains(t, body, "• Send gentle reminders")
}

func TestFormatWeeklyReminder_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	payments := []entity.UnpaidPayment{
		unpaid("Acme Ltd", 100, now.AddDate(0, 0, -1)),
		unpaid("Beta Homes", 50, now.AddDate(0, 0, 3)),
	}

	first := report.FormatWeeklyReminder(report.CategorizeUnpaid(payments, now), now)
	second := report.FormatWeeklyReminder(report.CategorizeUnpaid(payments, now), now)

	require.Equal(t, first, second)
}

func TestFormatMonthlyAnalysis_AllClear(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "📊 Monthly Payment Status - All Clear! 🎉",
		report.MonthlyAnalysisSubject(nil, decimal.Zero))

	body := report.FormatMonthlyAnalysis(nil, decimal.Zero, 0, now)

	require.Contains(t, body, "📊 MONTHLY PAYMENT STATUS - March 2026")
	require.Contains(t, body, "🎉 EXCELLENT NEWS!")
	require.Contains(t, body, "No outstanding payments - all clients are up to date!")
	require.Contains(t, body, "Your Business Manager 💯")
}

func TestFormatMonthlyAnalysis(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	payments := []entity.UnpaidPayment{
		unpaid("Acme Ltd", 600, now.AddDate(0, 0, -40)),
		unpaid("Beta Homes", 80, now.AddDate(0, 0, 5)),
	}

	debts := report.AnalyzeByClient(payments, now)
	total := decimal.NewFromFloat(680)

	require.Equal(t, "📊 Monthly Payment Analysis - £680.00 Outstanding",
		report.MonthlyAnalysisSubject(debts, total))

	body := report.FormatMonthlyAnalysis(debts, total, len(payments), now)

	require.Contains(t, body, "📊 MONTHLY PAYMENT ANALYSIS - March 2026")
	require.Contains(t, body, "• Total Outstanding: £680.00")
	require.Contains(t, body, "• Number of Clients with Unpaid Jobs: 2")
	require.Contains(t, body, "• Total Unpaid Invoices: 2")
	require.Contains(t, body, "🏢 Acme Ltd:")
	require.Contains(t, body, "• Total Owed: £600.00")
	require.Contains(t, body, "- £600.00 (40 days overdue)")
	require.Contains(t, body, "- £80.00 (due in 5 days)")
	require.Contains(t, body, "• Contact these clients immediately: Acme Ltd")
	require.Contains(t, body, "Generated: 15/03/2026 at 12:00")
	require.Contains(t, body, "Your Business Analyst 📊")
}

func TestFormatMonthlyAnalysis_UrgentListCappedAtThree(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	payments := []entity.UnpaidPayment{
		unpaid("Acme Ltd", 900, now.AddDate(0, 0, -1)),
		unpaid("Beta Homes", 800, now.AddDate(0, 0, -1)),
		unpaid("Crown Offices", 700, now.AddDate(0, 0, -1)),
		unpaid("Delta Flats", 600, now.AddDate(0, 0, -1)),
	}

	debts := report.AnalyzeByClient(payments, now)
	body := report.FormatMonthlyAnalysis(debts, decimal.NewFromFloat(3000), len(payments), now)

	require.Contains(t, body, "• Contact these clients immediately: Acme Ltd, Beta Homes, Crown Offices")
	require.NotContains(t, body, "Crown Offices, Delta Flats")
}

func TestFormatMonthlyReport(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	jobs := []entity.JobSummary{
		jobFor("Acme Ltd", 200, 30),
		jobFor("Beta Homes", 100, 20),
	}

	paid := []entity.Payment{{Amount: decimal.NewFromFloat(150)}}

	unpaidPayments := []entity.UnpaidPayment{
		unpaid("Acme Ltd", 100, now.AddDate(0, 0, -3)),
	}

	m := report.BuildMonthly(jobs, paid, unpaidPayments, now)

	require.Equal(t, "📊 Monthly Report - March 2026 - £250.00 Profit",
		report.MonthlyReportSubject(m, now))

	body := report.FormatMonthlyReport(m, now)

	require.Contains(t, body, "📊 MONTHLY BUSINESS REPORT - March 2026")
	require.Contains(t, body, "- Jobs Completed: 2")
	require.Contains(t, body, "- Total Revenue Generated: £300.00")
	require.Contains(t, body, "- Total Expenses: £50.00")
	require.Contains(t, body, "- Profit This Month: £250.00")
	require.Contains(t, body, "- Cash Received: £150.00")
	require.Contains(t, body, "- ⚠️ Overdue Payments: £100.00 (1 invoices)")
	require.Contains(t, body, "   1. Acme Ltd: £200.00")
	require.Contains(t, body, "   2. Beta Homes: £100.00")
	require.Contains(t, body, "- Average Job Value: £150.00")
	require.Contains(t, body, "- Payment Collection Rate: 50.0%")
	require.Contains(t, body, "Generated on: 15/03/2026 at 12:00")
	require.Contains(t, body, "Your Business Assistant 📈")
}

func TestFormatMonthlyReport_NoJobs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	m := report.BuildMonthly(nil, nil, nil, now)
	body := report.FormatMonthlyReport(m, now)

	require.Contains(t, body, "No jobs completed this month")
	require.Contains(t, body, "- Payment Collection Rate: 0.0%")

	lines := strings.Split(body, "\n")
	require.Equal(t, "Your Business Assistant 📈", lines[len(lines)-2])
}
