package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/maidvally/backoffice/internal/entity"
)

// TopClientsLimit caps the per-month client leaderboard.
const TopClientsLimit = 5

// Monthly is the monthly business report: revenue and profit for jobs
// started this month, cash received this month, and the all-time
// outstanding position.
type Monthly struct {
	JobCount         int
	TotalRevenue     decimal.Decimal
	TotalExpenses    decimal.Decimal
	Profit           decimal.Decimal
	CashReceived     decimal.Decimal
	TotalOutstanding decimal.Decimal
	TotalOverdue     decimal.Decimal
	OverdueCount     int
	TopClients       []ClientRevenue
	CollectionRate   decimal.Decimal // percent
	AvgJobValue      decimal.Decimal
}

type ClientRevenue struct {
	Name    string
	Revenue decimal.Decimal
}

// BuildMonthly computes the monthly metrics. jobs and paidThisMonth must
// already be restricted to the current month; unpaid is the all-time
// outstanding payment set.
func BuildMonthly(
	jobs []entity.JobSummary,
	paidThisMonth []entity.Payment,
	unpaid []entity.UnpaidPayment,
	now time.Time,
) Monthly {
	m := Monthly{
		JobCount:         len(jobs),
		TotalRevenue:     decimal.Zero,
		TotalExpenses:    decimal.Zero,
		CashReceived:     decimal.Zero,
		TotalOutstanding: decimal.Zero,
		TotalOverdue:     decimal.Zero,
		CollectionRate:   decimal.Zero,
		AvgJobValue:      decimal.Zero,
	}

	var order []string

	revenueByClient := make(map[string]decimal.Decimal)

	for _, j := range jobs {
		m.TotalRevenue = m.TotalRevenue.Add(j.TotalAmount)
		m.TotalExpenses = m.TotalExpenses.Add(j.TotalExpenses)

		if _, ok := revenueByClient[j.ClientName]; !ok {
			order = append(order, j.ClientName)
		}

		revenueByClient[j.ClientName] = revenueByClient[j.ClientName].Add(j.TotalAmount)
	}

	m.Profit = m.TotalRevenue.Sub(m.TotalExpenses)

	for _, p := range paidThisMonth {
		m.CashReceived = m.CashReceived.Add(p.Amount)
	}

	for _, p := range unpaid {
		m.TotalOutstanding = m.TotalOutstanding.Add(p.Amount)

		if p.DueDate.Before(now) {
			m.TotalOverdue = m.TotalOverdue.Add(p.Amount)
			m.OverdueCount++
		}
	}

	top := make([]ClientRevenue, 0, len(order))
	for _, name := range order {
		top = append(top, ClientRevenue{Name: name, Revenue: revenueByClient[name]})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})

	if len(top) > TopClientsLimit {
		top = top[:TopClientsLimit]
	}

	m.TopClients = top

	if m.TotalRevenue.IsPositive() {
		m.CollectionRate = m.CashReceived.Div(m.TotalRevenue).Mul(decimal.New(100, 0))
	}

	if m.JobCount > 0 {
		m.AvgJobValue = m.TotalRevenue.Div(decimal.New(int64(m.JobCount), 0))
	}

	return m
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
