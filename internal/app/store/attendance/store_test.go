package attendancestore_test

import (
	"errors"
	"testing"
	"time"

	attendancestore "github.com/dalemusser/rollcall/internal/app/store/attendance"
	"github.com/dalemusser/rollcall/internal/domain/models"
	"github.com/dalemusser/rollcall/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := attendancestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	today := day(2024, time.March, 15)

	created, err := store.Create(ctx, models.AttendanceRecord{
		UserID:     userID,
		Date:       today,
		Status:     models.StatusPresent,
		DayOfMonth: today.Day(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("created ID is zero, want assigned")
	}
	if created.TimeIn.IsZero() {
		t.Error("created TimeIn is zero, want filled")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("lifecycle timestamps are zero, want filled")
	}

	found, err := store.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		t.Fatalf("FindByUserAndDate failed: %v", err)
	}
	if found == nil {
		t.Fatal("FindByUserAndDate returned nil, want the created record")
	}
	if found.ID != created.ID {
		t.Errorf("found ID = %s, want %s", found.ID.Hex(), created.ID.Hex())
	}
}

func TestFindByUserAndDate_NoRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := attendancestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	found, err := store.FindByUserAndDate(ctx, primitive.NewObjectID(), day(2024, time.March, 15))
	if err != nil {
		t.Fatalf("FindByUserAndDate failed: %v", err)
	}
	if found != nil {
		t.Errorf("found = %+v, want nil", found)
	}
}

func TestCreate_DuplicateDayRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := attendancestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	today := day(2024, time.March, 15)

	rec := models.AttendanceRecord{UserID: userID, Date: today, Status: models.StatusPresent}
	if _, err := store.Create(ctx, rec); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, rec)
	if !errors.Is(err, attendancestore.ErrAlreadyMarked) {
		t.Fatalf("second Create err = %v, want ErrAlreadyMarked", err)
	}

	// Different user, same day still inserts.
	other := models.AttendanceRecord{UserID: primitive.NewObjectID(), Date: today, Status: models.StatusLate}
	if _, err := store.Create(ctx, other); err != nil {
		t.Fatalf("Create for other user failed: %v", err)
	}
}

func TestRecentByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := attendancestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	for i := 0; i < 5; i++ {
		fx.CreateAttendance(ctx, userID, day(2024, time.March, 1).AddDate(0, 0, i), models.StatusPresent)
	}
	fx.CreateAttendance(ctx, otherID, day(2024, time.March, 3), models.StatusPresent)

	recs, err := store.RecentByUser(ctx, userID, 3)
	if err != nil {
		t.Fatalf("RecentByUser failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want limit 3", len(recs))
	}
	if want := day(2024, time.March, 5); !recs[0].Date.Equal(want) {
		t.Errorf("first date = %v, want newest %v", recs[0].Date, want)
	}
	for _, r := range recs {
		if r.UserID != userID {
			t.Errorf("record for user %s leaked into results", r.UserID.Hex())
		}
	}
}

func TestInWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := attendancestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	fx.CreateAttendance(ctx, userID, day(2024, time.February, 29), models.StatusPresent)
	fx.CreateAttendance(ctx, userID, day(2024, time.March, 1), models.StatusPresent)
	fx.CreateAttendance(ctx, userID, day(2024, time.March, 31), models.StatusAbsent)
	fx.CreateAttendance(ctx, userID, day(2024, time.April, 1), models.StatusPresent)

	recs, err := store.InWindow(ctx, day(2024, time.March, 1), day(2024, time.March, 31))
	if err != nil {
		t.Fatalf("InWindow failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2 (boundaries inclusive, neighbors excluded)", len(recs))
	}
	for _, r := range recs {
		if r.Date.Month() != time.March {
			t.Errorf("record dated %v leaked into March window", r.Date)
		}
	}
}
