// internal/app/features/attendance/myattendance.go
package attendance

import (
	"net/http"

	"github.com/dalemusser/rollcall/internal/app/system/authz"
	"github.com/dalemusser/rollcall/internal/app/system/httpjson"
	"github.com/dalemusser/rollcall/internal/app/system/timeouts"
	"github.com/dalemusser/rollcall/internal/domain/models"
)

// ServeMyAttendance handles GET /attendance/my-attendance.
// Returns the caller's own records only, newest first, at most 30.
func (h *Handler) ServeMyAttendance(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "my attendance")
	defer cancel()

	recs, err := h.Records.RecentByUser(ctx, userID, historyLimit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "recent history query failed", err)
		return
	}
	if recs == nil {
		recs = []models.AttendanceRecord{}
	}

	httpjson.Write(w, http.StatusOK, recs)
}
