// internal/app/features/attendance/routes.go
package attendance

import (
	"github.com/dalemusser/rollcall/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the attendance subrouter; mounted under /attendance.
// Every route requires a verified bearer token; the monthly report routes
// additionally require the admin role, so non-admin calls never reach a
// store.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/mark", h.ServeMark)
	r.Get("/my-attendance", h.ServeMyAttendance)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole("admin"))
		r.Get("/monthly/{year}/{month}", h.ServeMonthlyReport)
		r.Get("/monthly/{year}/{month}/export.csv", h.ServeMonthlyCSV)
	})

	return r
}
