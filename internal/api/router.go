package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.Clients)
			r.Post("/", h.CreateClient)
			r.Post("/{client_id}/activate", h.ActivateClient)
			r.Post("/{client_id}/deactivate", h.DeactivateClient)
			r.Get("/{client_id}/invoice", h.GenerateInvoice)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.Jobs)
			r.Post("/", h.CreateJob)
			r.Delete("/{job_id}", h.DeleteJob)
			r.Post("/{job_id}/toggle-payment", h.TogglePayment)
			r.Post("/{job_id}/expenses", h.AddExpense)
		})

		r.Get("/jobtypes", h.JobTypes)
		r.Get("/dashboard", h.Dashboard)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/test-email", h.RunTask(TaskTestEmail))
			r.Post("/weekly-reminder", h.RunTask(TaskWeeklyReminder))
			r.Post("/monthly-reminder", h.RunTask(TaskMonthlyReminder))
			r.Post("/monthly-report", h.RunTask(TaskMonthlyReport))
		})
	})

	return mux
}
