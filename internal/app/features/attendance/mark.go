// internal/app/features/attendance/mark.go
package attendance

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	attendancestore "github.com/dalemusser/rollcall/internal/app/store/attendance"
	"github.com/dalemusser/rollcall/internal/app/system/authz"
	"github.com/dalemusser/rollcall/internal/app/system/httpjson"
	"github.com/dalemusser/rollcall/internal/app/system/sanitize"
	"github.com/dalemusser/rollcall/internal/app/system/timeouts"
	"github.com/dalemusser/rollcall/internal/domain/models"
)

// ServeMark handles POST /attendance/mark.
//
// One record per user per calendar day: the FindByUserAndDate pre-check
// catches the common case, and the unique index catches the race when two
// marks for the same user land together — both surface the same 400.
func (h *Handler) ServeMark(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}

	var req markRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		httpjson.Error(w, http.StatusBadRequest, `status must be "Present", "Absent", or "Late"`)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "mark attendance")
	defer cancel()

	today := h.Clock.Today()

	existing, err := h.Records.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		h.ErrLog.ServerError(w, r, "duplicate pre-check failed", err)
		return
	}
	if existing != nil {
		httpjson.Error(w, http.StatusBadRequest, "Attendance already marked today")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPresent
	}

	rec := models.AttendanceRecord{
		UserID:     userID,
		Date:       today,
		Status:     status,
		Notes:      sanitize.Text(req.Notes),
		DayOfMonth: today.Day(),
	}

	created, err := h.Records.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, attendancestore.ErrAlreadyMarked) {
			// Lost the race after the pre-check; same answer as above.
			httpjson.Error(w, http.StatusBadRequest, "Attendance already marked today")
			return
		}
		h.ErrLog.ServerError(w, r, "attendance insert failed", err)
		return
	}

	httpjson.Write(w, http.StatusOK, created)
}
