// internal/app/features/attendance/monthly.go
package attendance

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/rollcall/internal/app/system/httpjson"
	"github.com/dalemusser/rollcall/internal/app/system/timeouts"
	"github.com/dalemusser/rollcall/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeMonthlyReport handles GET /attendance/monthly/{year}/{month}.
// Admin access is enforced by route middleware before any store read.
func (h *Handler) ServeMonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "monthly report")
	defer cancel()

	report, records, err := h.buildMonthlyReport(ctx, year, month)
	if err != nil {
		h.ErrLog.ServerError(w, r, "monthly report failed", err)
		return
	}

	httpjson.Write(w, http.StatusOK, monthlyResponse{
		Report:     report,
		ExportData: records,
	})
}

// parseYearMonth validates the path params; month is 1-indexed.
func parseYearMonth(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		httpjson.Error(w, http.StatusBadRequest, "invalid year")
		return 0, 0, false
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		httpjson.Error(w, http.StatusBadRequest, "invalid month (1-12)")
		return 0, 0, false
	}
	return year, month, true
}

// buildMonthlyReport scans the inclusive month window, groups records by
// user in first-seen order, and joins name/email from the directory.
// totalDays counts every record regardless of status; daysPresent counts
// Present only. Only users with records in the window appear.
func (h *Handler) buildMonthlyReport(ctx context.Context, year, month int) ([]UserSummary, []models.AttendanceRecord, error) {
	start, end := h.Clock.MonthWindow(year, month)

	records, err := h.Records.InWindow(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}

	// Unique user ids in first-seen order.
	var ids []primitive.ObjectID
	index := make(map[primitive.ObjectID]int, len(records))
	for _, rec := range records {
		if _, seen := index[rec.UserID]; !seen {
			index[rec.UserID] = len(ids)
			ids = append(ids, rec.UserID)
		}
	}

	users, err := h.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	report := make([]UserSummary, len(ids))
	for i, id := range ids {
		u := users[id] // zero value (blank name/email) for unknown ids
		report[i] = UserSummary{Name: u.Name, Email: u.Email}
	}
	for _, rec := range records {
		i := index[rec.UserID]
		report[i].TotalDays++
		if rec.Status == models.StatusPresent {
			report[i].DaysPresent++
		}
	}

	return report, records, nil
}
