// internal/app/features/attendance/exportcsv.go
package attendance

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/rollcall/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeMonthlyCSV handles GET /attendance/monthly/{year}/{month}/export.csv.
// Same admin gate and window as the JSON report; streams the per-user
// summary as a CSV attachment.
func (h *Handler) ServeMonthlyCSV(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "monthly CSV export")
	defer cancel()

	report, _, err := h.buildMonthlyReport(ctx, year, month)
	if err != nil {
		h.ErrLog.ServerError(w, r, "monthly CSV export failed", err)
		return
	}

	filename := fmt.Sprintf("attendance_%04d-%02d.csv", year, month)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.Log.Error("CSV write failed (BOM)", zap.Error(err))
		return
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Email", "Days Present", "Total Days"}); err != nil {
		h.Log.Error("CSV write failed (header)", zap.Error(err))
		return
	}
	for _, s := range report {
		row := []string{
			s.Name,
			s.Email,
			strconv.Itoa(s.DaysPresent),
			strconv.Itoa(s.TotalDays),
		}
		if err := cw.Write(row); err != nil {
			h.Log.Error("CSV write failed (row)", zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Error("CSV flush failed", zap.Error(err))
	}
}
