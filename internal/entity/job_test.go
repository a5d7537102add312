package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/maidvally/backoffice/internal/entity"
)

func TestJobSummary_Profit(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		amount     float64
		expenses   float64
		wantProfit float64
	}{
		{
			name:       "no expenses",
			amount:     120,
			expenses:   0,
			wantProfit: 120,
		},
		{
			name:       "some expenses",
			amount:     150.50,
			expenses:   25.30,
			wantProfit: 125.20,
		},
		{
			name:       "expenses exceed revenue",
			amount:     80,
			expenses:   95.75,
			wantProfit: -15.75,
		},
		{
			name:       "free job",
			amount:     0,
			expenses:   12,
			wantProfit: -12,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			j := entity.JobSummary{
				Job:           entity.Job{TotalAmount: decimal.NewFromFloat(tt.amount)},
				TotalExpenses: decimal.NewFromFloat(tt.expenses),
			}

			gotProfit := j.Profit()
			if gotProfit.InexactFloat64() != tt.wantProfit {
				t.Errorf("Profit() = %v, want %v", gotProfit, tt.wantProfit)
			}
		})
	}
}

func TestJobSummary_FullyPaid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		amount float64
		paid   float64
		want   bool
	}{
		{
			name:   "nothing paid",
			amount: 100,
			paid:   0,
			want:   false,
		},
		{
			name:   "partially paid",
			amount: 100,
			paid:   99.99,
			want:   false,
		},
		{
			name:   "exactly paid",
			amount: 100,
			paid:   100,
			want:   true,
		},
		{
			name:   "overpaid",
			amount: 100,
			paid:   120,
			want:   true,
		},
		{
			name:   "zero amount job",
			amount: 0,
			paid:   0,
			want:   true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			j := entity.JobSummary{
				Job:       entity.Job{TotalAmount: decimal.NewFromFloat(tt.amount)},
				TotalPaid: decimal.NewFromFloat(tt.paid),
			}

			if got := j.FullyPaid(); got != tt.want {
				t.Errorf("FullyPaid() = %v, want %v", got, tt.want)
			}
		})
	}
}
