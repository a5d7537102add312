package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the fixed symbol all reports render amounts with.
const Currency = "£"

const (
	dateLayout      = "02/01/2006"
	monthLayout     = "January 2006"
	generatedLayout = "02/01/2006 at 15:04"
)

func money(d decimal.Decimal) string {
	return Currency + d.StringFixed(2)
}

// WeeklySubject is the subject line for the weekly reminder email.
func WeeklySubject(r Reminder) string {
	return fmt.Sprintf("📋 Weekly Payment Reminder - %s Overdue", money(r.TotalOverdue))
}

// FormatWeeklyReminder renders the weekly unpaid-payment reminder. Empty
// categories get a fixed all-clear line instead of being omitted.
func FormatWeeklyReminder(r Reminder, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 WEEKLY PAYMENT REMINDER - %s\n\n", now.Format(dateLayout))

	b.WriteString("💰 PAYMENT SUMMARY:\n")
	fmt.Fprintf(&b, "• Total Outstanding: %s\n", money(r.TotalUnpaid))
	fmt.Fprintf(&b, "• Overdue Amount: %s\n\n", money(r.TotalOverdue))

	fmt.Fprintf(&b, "🔴 OVERDUE PAYMENTS (%d invoices):\n", len(r.Overdue))

	for _, item := range r.Overdue {
		fmt.Fprintf(&b, "   • %s: %s (%d days overdue)\n",
			item.Payment.ClientName, money(item.Payment.Amount), item.DaysOverdue)
		fmt.Fprintf(&b, "     Service: %s\n", orNoDescription(item.Payment.JobDescription))
	}

	if len(r.Overdue) == 0 {
		b.WriteString("   🎉 No overdue payments!\n")
	}

	fmt.Fprintf(&b, "\n🟡 DUE SOON (%d invoices):\n", len(r.DueSoon))

	for _, item := range r.DueSoon {
		fmt.Fprintf(&b, "   • %s: %s (due in %d days)\n",
			item.Payment.ClientName, money(item.Payment.Amount), item.DaysUntilDue)
	}

	if len(r.DueSoon) == 0 {
		b.WriteString("   ✅ No payments due this week\n")
	}

	fmt.Fprintf(&b, "\n🟢 FUTURE PAYMENTS: %d invoices (%s)\n\n", len(r.Future), money(r.TotalFuture))

	b.WriteString("📞 ACTION NEEDED:\n")

	if len(r.Overdue) > 0 {
		b.WriteString("• Contact overdue clients immediately\n")
		b.WriteString("• Consider late payment fees\n")
	}

	if len(r.DueSoon) > 0 {
		b.WriteString("• Send gentle reminders to clients with upcoming due dates\n")
	}

	b.WriteString("• Update payment tracking system\n")
	b.WriteString("• Follow up on any payment commitments\n\n")
	b.WriteString("Your Payment Tracker 💳\n")

	return b.String()
}

// MonthlyAnalysisSubject is the subject line for the monthly reminder email.
func MonthlyAnalysisSubject(debts []ClientDebt, totalUnpaid decimal.Decimal) string {
	if len(debts) == 0 {
		return "📊 Monthly Payment Status - All Clear! 🎉"
	}

	return fmt.Sprintf("📊 Monthly Payment Analysis - %s Outstanding", money(totalUnpaid))
}

// FormatMonthlyAnalysis renders the monthly per-client debt breakdown, or
// the all-clear variant when nothing is outstanding.
func FormatMonthlyAnalysis(debts []ClientDebt, totalUnpaid decimal.Decimal, invoiceCount int, now time.Time) string {
	if len(debts) == 0 {
		return fmt.Sprintf(`📊 MONTHLY PAYMENT STATUS - %s

🎉 EXCELLENT NEWS!
No outstanding payments - all clients are up to date!

Keep up the great work with your payment collection!

Your Business Manager 💯
`, now.Format(monthLayout))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "📊 MONTHLY PAYMENT ANALYSIS - %s\n\n", now.Format(monthLayout))

	b.WriteString("💰 OVERVIEW:\n")
	fmt.Fprintf(&b, "• Total Outstanding: %s\n", money(totalUnpaid))
	fmt.Fprintf(&b, "• Number of Clients with Unpaid Jobs: %d\n", len(debts))
	fmt.Fprintf(&b, "• Total Unpaid Invoices: %d\n\n", invoiceCount)

	b.WriteString("👥 CLIENT BREAKDOWN (by amount owed):\n")

	for _, debt := range debts {
		oldestDays := wholeDays(now.Sub(debt.OldestDue))

		fmt.Fprintf(&b, "\n   🏢 %s:\n", debt.ClientName)
		fmt.Fprintf(&b, "      • Total Owed: %s\n", money(debt.TotalOwed))
		fmt.Fprintf(&b, "      • Number of Unpaid Invoices: %d\n", debt.Count)
		fmt.Fprintf(&b, "      • Oldest Payment: %d days overdue\n", oldestDays)

		for _, p := range debt.Payments {
			fmt.Fprintf(&b, "        - %s %s\n", money(p.Amount), debtStatus(p, now))
		}
	}

	b.WriteString("\n💡 RECOMMENDATIONS:\n\n")
	b.WriteString("HIGH PRIORITY ACTIONS:\n")

	var urgent []string

	for _, debt := range debts {
		if debt.Urgent() {
			urgent = append(urgent, debt.ClientName)
		}
	}

	if len(urgent) > 0 {
		if len(urgent) > 3 {
			urgent = urgent[:3]
		}

		fmt.Fprintf(&b, "• Contact these clients immediately: %s\n", strings.Join(urgent, ", "))
		b.WriteString("• Consider payment plans for large amounts\n")
		b.WriteString("• Review credit terms for repeat late payers\n")
	}

	b.WriteString("\nGENERAL ACTIONS:\n")
	b.WriteString("• Send payment reminders to all overdue clients\n")
	b.WriteString("• Update payment tracking system\n")
	b.WriteString("• Consider requiring deposits for new jobs from slow payers\n")
	b.WriteString("• Review and tighten payment terms if needed\n\n")

	b.WriteString("📈 BUSINESS HEALTH:\n")
	b.WriteString("• Track your payment collection rate monthly\n")
	b.WriteString("• Set up automatic reminders for due dates\n")
	b.WriteString("• Consider offering early payment discounts\n\n")

	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format(generatedLayout))
	b.WriteString("Your Business Analyst 📊\n")

	return b.String()
}

// MonthlyReportSubject is the subject line for the monthly business report.
func MonthlyReportSubject(m Monthly, now time.Time) string {
	return fmt.Sprintf("📊 Monthly Report - %s - %s Profit", now.Format(monthLayout), money(m.Profit))
}

// FormatMonthlyReport renders the monthly business report.
func FormatMonthlyReport(m Monthly, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 MONTHLY BUSINESS REPORT - %s\n\n", now.Format(monthLayout))

	b.WriteString("💰 REVENUE & PROFIT:\n")
	fmt.Fprintf(&b, "- Jobs Completed: %d\n", m.JobCount)
	fmt.Fprintf(&b, "- Total Revenue Generated: %s\n", money(m.TotalRevenue))
	fmt.Fprintf(&b, "- Total Expenses: %s\n", money(m.TotalExpenses))
	fmt.Fprintf(&b, "- Profit This Month: %s\n\n", money(m.Profit))

	b.WriteString("💳 CASH FLOW:\n")
	fmt.Fprintf(&b, "- Cash Received: %s\n", money(m.CashReceived))
	fmt.Fprintf(&b, "- Outstanding Payments: %s\n", money(m.TotalOutstanding))
	fmt.Fprintf(&b, "- ⚠️ Overdue Payments: %s (%d invoices)\n\n", money(m.TotalOverdue), m.OverdueCount)

	b.WriteString("🏆 TOP CLIENTS THIS MONTH:\n")

	for i, c := range m.TopClients {
		fmt.Fprintf(&b, "   %d. %s: %s\n", i+1, c.Name, money(c.Revenue))
	}

	if len(m.TopClients) == 0 {
		b.WriteString("   No jobs completed this month\n")
	}

	b.WriteString("\n📈 SUMMARY:\n")
	b.WriteString("- Revenue vs Last Month: Track your growth!\n")
	fmt.Fprintf(&b, "- Average Job Value: %s\n", money(m.AvgJobValue))
	fmt.Fprintf(&b, "- Payment Collection Rate: %s%%\n\n", m.CollectionRate.StringFixed(1))

	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(generatedLayout))
	b.WriteString("Your Business Assistant 📈\n")

	return b.String()
}

func debtStatus(p DebtItem, now time.Time) string {
	if p.DaysOverdue > 0 {
		return fmt.Sprintf("(%d days overdue)", p.DaysOverdue)
	}

	daysUntilDue := wholeDays(p.DueDate.Sub(now))
	if daysUntilDue >= 0 && p.DueDate.After(now) {
		return fmt.Sprintf("(due in %d days)", daysUntilDue)
	}

	return "(due today)"
}

func orNoDescription(s string) string {
	if s == "" {
		return "No description"
	}

	return s
}
