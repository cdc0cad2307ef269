package attendance_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/rollcall/internal/domain/models"
	"github.com/dalemusser/rollcall/internal/testutil"
)

func decodeRecords(t *testing.T, body []byte) []models.AttendanceRecord {
	t.Helper()
	var recs []models.AttendanceRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		t.Fatalf("failed to parse records JSON: %v", err)
	}
	return recs
}

func TestServeMyAttendance_EmptyHistory(t *testing.T) {
	e := newTestEnv(t)
	user := testutil.MemberUser()

	rr := httptest.NewRecorder()
	e.handler.ServeMyAttendance(rr, testutil.NewAuthenticatedRequest("GET", "/attendance/my-attendance", user))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	recs := decodeRecords(t, rr.Body.Bytes())
	if len(recs) != 0 {
		t.Errorf("records = %d, want 0", len(recs))
	}
	// Empty history must be a JSON array, not null.
	if got := rr.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestServeMyAttendance_OwnRecordsOnly(t *testing.T) {
	e := newTestEnv(t)
	user := testutil.MemberUser()
	other := testutil.MemberUser()

	mine := e.seed(t, user.ID, testDay(2024, time.March, 14), models.StatusPresent)
	e.seed(t, other.ID, testDay(2024, time.March, 14), models.StatusPresent)
	e.seed(t, other.ID, testDay(2024, time.March, 13), models.StatusLate)

	rr := httptest.NewRecorder()
	e.handler.ServeMyAttendance(rr, testutil.NewAuthenticatedRequest("GET", "/attendance/my-attendance", user))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	recs := decodeRecords(t, rr.Body.Bytes())
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1 (own only)", len(recs))
	}
	if recs[0].ID != mine.ID {
		t.Errorf("record id = %s, want %s", recs[0].ID.Hex(), mine.ID.Hex())
	}
}

func TestServeMyAttendance_NewestFirstCappedAt30(t *testing.T) {
	e := newTestEnv(t)
	user := testutil.MemberUser()

	// 35 consecutive days; insertion order is oldest first.
	for i := 0; i < 35; i++ {
		e.seed(t, user.ID, testDay(2024, time.January, 1).AddDate(0, 0, i), models.StatusPresent)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeMyAttendance(rr, testutil.NewAuthenticatedRequest("GET", "/attendance/my-attendance", user))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	recs := decodeRecords(t, rr.Body.Bytes())
	if len(recs) != 30 {
		t.Fatalf("records = %d, want 30", len(recs))
	}
	if want := testDay(2024, time.February, 4); !recs[0].Date.Equal(want) {
		t.Errorf("first record date = %v, want newest %v", recs[0].Date, want)
	}
	for i := 1; i < len(recs); i++ {
		if !recs[i].Date.Before(recs[i-1].Date) {
			t.Fatalf("records not in descending date order at index %d: %v then %v",
				i, recs[i-1].Date, recs[i].Date)
		}
	}
}

func TestServeMyAttendance_NoClaims(t *testing.T) {
	e := newTestEnv(t)

	rr := httptest.NewRecorder()
	e.handler.ServeMyAttendance(rr, testutil.NewRequest("GET", "/attendance/my-attendance"))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestServeMyAttendance_StoreFailure(t *testing.T) {
	e := newTestEnv(t)
	e.store.FailWith = fmt.Errorf("cursor timeout")
	user := testutil.MemberUser()

	rr := httptest.NewRecorder()
	e.handler.ServeMyAttendance(rr, testutil.NewAuthenticatedRequest("GET", "/attendance/my-attendance", user))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
