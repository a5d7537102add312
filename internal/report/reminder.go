// Package report holds the pure reporting core: unpaid payment
// categorization, per-client debt analysis, monthly business metrics and
// the plain-text formatters for the three emailed reports. Nothing here
// touches the database or the mailer.
package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/maidvally/backoffice/internal/entity"
)

// DueSoonWindow is how far ahead a payment counts as "due soon".
const DueSoonWindow = 7 * 24 * time.Hour

// Reminder partitions the unpaid payment set by due date. The three groups
// are disjoint and together cover every input payment.
type Reminder struct {
	Overdue      []OverdueItem
	DueSoon      []DueSoonItem
	Future       []entity.UnpaidPayment
	TotalUnpaid  decimal.Decimal
	TotalOverdue decimal.Decimal
	TotalFuture  decimal.Decimal
}

type OverdueItem struct {
	Payment     entity.UnpaidPayment
	DaysOverdue int
}

type DueSoonItem struct {
	Payment      entity.UnpaidPayment
	DaysUntilDue int
}

// CategorizeUnpaid classifies unpaid payments against the reference time.
// A payment due exactly at now is overdue; one due exactly at now plus the
// window is due soon.
func CategorizeUnpaid(payments []entity.UnpaidPayment, now time.Time) Reminder {
	r := Reminder{
		TotalUnpaid:  decimal.Zero,
		TotalOverdue: decimal.Zero,
		TotalFuture:  decimal.Zero,
	}

	weekFromNow := now.Add(DueSoonWindow)

	for _, p := range payments {
		r.TotalUnpaid = r.TotalUnpaid.Add(p.Amount)

		switch {
		case !p.DueDate.After(now):
			r.Overdue = append(r.Overdue, OverdueItem{
				Payment:     p,
				DaysOverdue: wholeDays(now.Sub(p.DueDate)),
			})
			r.TotalOverdue = r.TotalOverdue.Add(p.Amount)

		case !p.DueDate.After(weekFromNow):
			r.DueSoon = append(r.DueSoon, DueSoonItem{
				Payment:      p,
				DaysUntilDue: wholeDays(p.DueDate.Sub(now)),
			})

		default:
			r.Future = append(r.Future, p)
			r.TotalFuture = r.TotalFuture.Add(p.Amount)
		}
	}

	return r
}

// UrgentDebtThreshold marks a client urgent once it owes more than this.
var UrgentDebtThreshold = decimal.New(500, 0)

// UrgentOverdueDays marks a client urgent once any payment is overdue longer.
const UrgentOverdueDays = 30

// ClientDebt is one client's share of the unpaid payment set.
type ClientDebt struct {
	ClientID   uuid.UUID
	ClientName string
	TotalOwed  decimal.Decimal
	Count      int
	OldestDue  time.Time
	Payments   []DebtItem
}

type DebtItem struct {
	Amount         decimal.Decimal
	DueDate        time.Time
	DaysOverdue    int // zero when not yet due
	JobDescription string
}

// Urgent reports whether the client needs immediate chasing: any payment
// more than 30 days overdue, or more than the debt threshold owed in total.
func (c ClientDebt) Urgent() bool {
	if c.TotalOwed.GreaterThan(UrgentDebtThreshold) {
		return true
	}

	for _, p := range c.Payments {
		if p.DaysOverdue > UrgentOverdueDays {
			return true
		}
	}

	return false
}

// AnalyzeByClient groups unpaid payments by owning client, ordered by total
// owed descending. Ties keep the first-encountered order.
func AnalyzeByClient(payments []entity.UnpaidPayment, now time.Time) []ClientDebt {
	var order []uuid.UUID

	byClient := make(map[uuid.UUID]*ClientDebt)

	for _, p := range payments {
		debt, ok := byClient[p.ClientID]
		if !ok {
			debt = &ClientDebt{
				ClientID:   p.ClientID,
				ClientName: p.ClientName,
				TotalOwed:  decimal.Zero,
				OldestDue:  p.DueDate,
			}
			byClient[p.ClientID] = debt

			order = append(order, p.ClientID)
		}

		daysOverdue := wholeDays(now.Sub(p.DueDate))
		if daysOverdue < 0 {
			daysOverdue = 0
		}

		debt.TotalOwed = debt.TotalOwed.Add(p.Amount)
		debt.Count++
		debt.Payments = append(debt.Payments, DebtItem{
			Amount:         p.Amount,
			DueDate:        p.DueDate,
			DaysOverdue:    daysOverdue,
			JobDescription: p.JobDescription,
		})

		if p.DueDate.Before(debt.OldestDue) {
			debt.OldestDue = p.DueDate
		}
	}

	debts := make([]ClientDebt, 0, len(order))
	for _, id := range order {
		debts = append(debts, *byClient[id])
	}

	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].TotalOwed.GreaterThan(debts[j].TotalOwed)
	})

	return debts
}

func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
