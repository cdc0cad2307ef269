package attendance_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/rollcall/internal/domain/models"
	"github.com/dalemusser/rollcall/internal/testutil"
)

func TestServeMonthlyCSV(t *testing.T) {
	e := newTestEnv(t)
	admin := testutil.AdminUser()

	alice := e.users.Add("Alice Ng", "alice@example.com")
	e.seed(t, alice.ID.Hex(), testDay(2024, time.March, 4), models.StatusPresent)
	e.seed(t, alice.ID.Hex(), testDay(2024, time.March, 5), models.StatusAbsent)

	rr := httptest.NewRecorder()
	e.handler.ServeMonthlyCSV(rr, monthlyRequest(admin, "2024", "3"))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/csv", got)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, `attendance_2024-03.csv`) {
		t.Errorf("Content-Disposition = %q, want attendance_2024-03.csv filename", got)
	}

	body := rr.Body.Bytes()
	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(body, bom) {
		t.Fatal("body missing UTF-8 BOM prefix")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, bom))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("CSV rows = %d, want header + 1", len(rows))
	}

	wantHeader := []string{"Name", "Email", "Days Present", "Total Days"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	wantRow := []string{"Alice Ng", "alice@example.com", "1", "2"}
	for i, col := range wantRow {
		if rows[1][i] != col {
			t.Errorf("row[%d] = %q, want %q", i, rows[1][i], col)
		}
	}
}

func TestServeMonthlyCSV_BadMonth(t *testing.T) {
	e := newTestEnv(t)
	admin := testutil.AdminUser()

	rr := httptest.NewRecorder()
	e.handler.ServeMonthlyCSV(rr, monthlyRequest(admin, "2024", "14"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
